// Package aoc holds the shared pieces for solving the yearly puzzle
// collections: the runner that discovers and runs day solvers, line-based
// input reading, and the grids, containers and union-find used by the days.
package aoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

var wantRx = regexp.MustCompile(`(?m)^\s*want=(\S*)\s*$`)

// parseWant returns the expected sample answer recorded in a doc comment.
func parseWant(comment string) (string, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := wantRx.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// extractWants parses the Go files in src and returns the sample answers
// found in the doc comments of its functions, keyed by function name.
func extractWants(src fs.FS) (map[string]string, error) {
	wants := make(map[string]string)
	if src == nil {
		return wants, nil
	}
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	for _, name := range names {
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(fset, name, b, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
		}
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				if w, ok := parseWant(c.Text); ok {
					wants[fd.Name.Name] = w
					break
				}
			}
		}
	}
	return wants, nil
}

// Puzzle is the context of the day and part being solved. Solvers embed a
// *Puzzle and read their input through it.
type Puzzle struct {
	Year       int
	Day        int
	Part       string
	SampleMode bool

	inputDir  string
	sampleDir string
	log       *zap.Logger
}

// Path returns the input file for the current day.
func (p *Puzzle) Path() string {
	dir := fmt.Sprintf("aoc_%02d", p.Year%100)
	if p.SampleMode {
		return filepath.Join(p.sampleDir, dir, fmt.Sprintf("day_%02d_sample.txt", p.Day))
	}
	return filepath.Join(p.inputDir, dir, fmt.Sprintf("day_%02d.txt", p.Day))
}

func (p *Puzzle) Reader() FileReader {
	return NewFileReader(p.Path())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string) error) error {
	return p.Reader().ForLines(func(_ int, line string) error { return onLine(line) })
}

func (p *Puzzle) Lines() ([]string, error) {
	return p.Reader().Lines()
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.log != nil {
		p.log.Sugar().Debugf(format, args...)
	}
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var (
	methodRx   = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	solverType = reflect.TypeOf((func() (any, error))(nil))
)

// extractMethods finds the methods of x named D{day}p{part} and groups them
// by day. The methods must have the signature func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	v := rv.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m := v.Method(i)
		if m.Type() != solverType {
			return nil, fmt.Errorf("solver method %s: got %v; want %v", mn, m.Type(), solverType)
		}
		d, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, err
		}
		byDays[d] = append(byDays[d], partSolver{
			fn:   m.Interface().(func() (any, error)),
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// Runner runs the solvers of a puzzle collection.
type Runner struct {
	InputDir   string
	SampleDir  string
	Day        int    // 0 runs every day
	Part       string // empty runs every part
	SampleMode bool

	Out    io.Writer
	Logger *zap.Logger
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Run runs the solver for each day of year in order. src holds the solver's
// source files, from which expected sample answers are read. A failing part is
// reported and the run moves on; Run itself only fails when the solver cannot
// be used or the requested day does not exist.
func (r *Runner) Run(year int, src fs.FS, slvr any) error {
	wants, err := extractWants(src)
	if err != nil {
		return err
	}
	p := &Puzzle{
		Year:       year,
		SampleMode: r.SampleMode,
		inputDir:   r.InputDir,
		sampleDir:  r.SampleDir,
		log:        r.logger(),
	}
	rv := reflect.ValueOf(slvr)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("solver: got %T; want pointer to struct", slvr)
	}
	field := rv.Elem().FieldByName("Puzzle")
	if !field.IsValid() || field.Type() != reflect.TypeOf(p) {
		return fmt.Errorf("solver %T does not embed *aoc.Puzzle", slvr)
	}
	field.Set(reflect.ValueOf(p))

	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}

	if r.Day != 0 {
		d, ok := days[r.Day]
		if !ok {
			return fmt.Errorf("no day %d in %d", r.Day, year)
		}
		r.runDay(p, d, wants)
		return nil
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		r.runDay(p, days[d], wants)
	}
	return nil
}

func (r *Runner) runDay(p *Puzzle, d day, wants map[string]string) {
	log := r.logger().With(zap.Int("year", p.Year), zap.Int("day", d.day))
	p.Day = d.day
	for _, ps := range d.parts {
		if r.Part != "" && ps.Part != r.Part {
			continue
		}
		p.Part = ps.Part
		prefix := fmt.Sprintf("AoC %02d Day %02d Part %s", p.Year%100, d.day, ps.Part)

		t0 := time.Now()
		got, err := ps.fn()
		took := time.Since(t0)
		if err != nil {
			log.Warn("part failed", zap.String("part", ps.Part), zap.String("input", p.Path()), zap.Error(err))
			fmt.Fprintf(r.out(), "%s: Failed with message: %v\n", prefix, err)
			continue
		}
		log.Debug("part solved", zap.String("part", ps.Part), zap.Duration("took", took))

		if !r.SampleMode {
			fmt.Fprintf(r.out(), "%s: %v\n", prefix, got)
			continue
		}
		want, ok := wants[ps.Name]
		switch {
		case !ok:
			fmt.Fprintf(r.out(), "%s sample: %v (no want)\n", prefix, got)
		case fmt.Sprint(got) != want:
			fmt.Fprintf(r.out(), "%s sample: %v ❌; want %v\n", prefix, got, want)
		default:
			fmt.Fprintf(r.out(), "%s sample: %v ✅\n", prefix, got)
		}
	}
}
