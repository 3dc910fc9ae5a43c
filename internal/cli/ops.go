package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-fn-utils/arr"
	"github.com/hasbyte1/go-fn-utils/collections"
	"github.com/hasbyte1/go-fn-utils/fn"
	"github.com/hasbyte1/go-fn-utils/hashing"
	"github.com/hasbyte1/go-fn-utils/internal/config"
	"github.com/hasbyte1/go-fn-utils/internal/document"
)

var (
	errNotFound  = errors.New("not found")
	errNotArray  = errors.New("input is not an array")
	errNotObject = errors.New("input is not an object")
)

type executor struct {
	cfg    *config.Config
	hasher *hashing.Manager
	keyOf  func(any) string
}

func newExecutor(cfg *config.Config) (*executor, error) {
	e := &executor{cfg: cfg}
	if cfg.Hash != "" {
		driver, err := hashing.ParseDriverName(cfg.Hash)
		if err != nil {
			return nil, err
		}
		e.hasher = hashing.NewDefaultManager()
		if err := e.hasher.SetDefaultDriver(driver); err != nil {
			return nil, err
		}
	}
	e.keyOf = e.keyFunc(arr.ParsePath(cfg.Key))
	return e, nil
}

// keyFunc looks key up in an element and coerces the result to a string.
// The lookup's (value, found) pair is handed to the coercion as a tuple.
func (e *executor) keyFunc(key arr.Path) func(any) string {
	pipeline := fn.Compose(
		fn.Spread(key.Lookup),
		fn.Binary(e.coerce),
	)
	return func(elem any) string {
		return pipeline(elem).Get().(string)
	}
}

// coerce renders a key value: absent is "", scalars print plainly and
// structured values use their canonical JSON, or a digest with --hash.
func (e *executor) coerce(v any, found bool) string {
	if !found {
		return ""
	}
	if e.hasher != nil {
		return e.hasher.MustKey(v)
	}
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return formatNumber(val)
	}
	b, err := hashing.Canonical(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// formatNumber writes f the way JavaScript stringifies numbers: plain
// decimal notation for 1e-6 <= |f| < 1e21 and shortest exponent form
// ("1e+21", "1.5e-7") outside that range.
func formatNumber(f float64) string {
	if abs := math.Abs(f); abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	n, err := strconv.Atoi(exp)
	if err != nil {
		return mant + "e" + exp
	}
	sign := "+"
	if n < 0 {
		sign, n = "-", -n
	}
	return mant + "e" + sign + strconv.Itoa(n)
}

func (e *executor) run(doc any, loadOther func() (any, error)) (any, error) {
	if e.cfg.Op == config.OpGet {
		v, ok := arr.Value(doc, e.cfg.Path)
		if !ok {
			return nil, fmt.Errorf("%w: path %q", errNotFound, e.cfg.Path)
		}
		return v, nil
	}

	target, err := e.selectTarget(doc)
	if err != nil {
		return nil, err
	}

	switch e.cfg.Op {
	case config.OpDot:
		return arr.Dot(target), nil
	case config.OpFind:
		obj, ok := target.(*document.Object)
		if !ok {
			return nil, errNotObject
		}
		k, ok := arr.FindKey[string, any](obj, func(v any, _ string, _ collections.Enumerable[string, any]) bool {
			return e.keyOf(document.Plain(v)) == e.cfg.Equals
		})
		if !ok {
			return nil, fmt.Errorf("%w: no member with %s = %q", errNotFound, e.cfg.Key, e.cfg.Equals)
		}
		return k, nil
	}

	items, err := asList(target)
	if err != nil {
		return nil, err
	}

	switch e.cfg.Op {
	case config.OpGroup:
		return arr.GroupBy(items, e.keyOf), nil
	case config.OpCollect:
		return arr.CollectBy(items, e.keyOf), nil
	case config.OpIndex:
		return arr.IndexBy(items, e.keyOf), nil
	case config.OpDiff, config.OpIntersect:
		otherDoc, err := loadOther()
		if err != nil {
			return nil, err
		}
		otherTarget, err := e.selectTarget(otherDoc)
		if err != nil {
			return nil, err
		}
		others, err := asList(otherTarget)
		if err != nil {
			return nil, fmt.Errorf("other: %w", err)
		}
		if e.cfg.Op == config.OpDiff {
			return arr.DifferenceBy(items, others, e.keyOf), nil
		}
		return arr.IntersectionBy(items, others, e.keyOf), nil
	}
	return nil, fmt.Errorf("unsupported operation %q", e.cfg.Op)
}

// selectTarget narrows doc to --path when one is given.
func (e *executor) selectTarget(doc any) (any, error) {
	if e.cfg.Path == "" {
		return doc, nil
	}
	v, ok := arr.Value(doc, e.cfg.Path)
	if !ok {
		return nil, fmt.Errorf("%w: path %q", errNotFound, e.cfg.Path)
	}
	return v, nil
}

func asList(v any) ([]any, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w (got %T)", errNotArray, v)
	}
	return items, nil
}
