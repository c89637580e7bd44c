package bundle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/grindlemire/go-tiny/internal/fsutil"
)

// ErrNoInfo is returned by Open when the directory has no info file.
var ErrNoInfo = errors.New("bundle has no info file")

// InfoFiles lists the recognised info file names in lookup order.
var InfoFiles = []string{"Info.yaml", "Info.yml", "Info.toml", "Info.json"}

// Option configures a Bundle.
type Option func(*Bundle)

// WithLogger sets the logger used for load and cache events.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bundle) {
		b.log = l
	}
}

// WithoutCache disables key-path memoization regardless of the per-call flag.
func WithoutCache() Option {
	return func(b *Bundle) {
		b.cacheEnabled = false
	}
}

type lookup struct {
	value any
	found bool
}

// Bundle is a directory with an info dictionary.
type Bundle struct {
	dir          string
	infoPath     string
	log          *zap.Logger
	cacheEnabled bool

	loads singleflight.Group

	mu    sync.RWMutex
	info  map[string]any
	cache map[string]lookup
}

// Open returns the bundle rooted at dir. The info file is located but not
// parsed until the first lookup.
func Open(dir string, opts ...Option) (*Bundle, error) {
	if !fsutil.DirectoryExists(dir) {
		return nil, fmt.Errorf("open bundle %s: not a directory", dir)
	}

	infoPath, ok := findInfo(dir)
	if !ok {
		return nil, fmt.Errorf("open bundle %s: %w", dir, ErrNoInfo)
	}

	b := &Bundle{
		dir:          dir,
		infoPath:     infoPath,
		log:          zap.NewNop(),
		cacheEnabled: true,
		cache:        make(map[string]lookup),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Dir returns the bundle directory.
func (b *Bundle) Dir() string {
	return b.dir
}

// InfoPath returns the path of the info file in use.
func (b *Bundle) InfoPath() string {
	return b.infoPath
}

// Info returns a copy of the parsed info dictionary, loading it on first use.
// Concurrent first calls share one load.
func (b *Bundle) Info(ctx context.Context) (map[string]any, error) {
	info, err := b.loadInfo(ctx)
	if err != nil {
		return nil, err
	}
	return cloneValue(info).(map[string]any), nil
}

func (b *Bundle) loadInfo(ctx context.Context) (map[string]any, error) {
	b.mu.RLock()
	info := b.info
	b.mu.RUnlock()
	if info != nil {
		return info, nil
	}

	ch := b.loads.DoChan("info", func() (any, error) {
		info, err := b.load()
		if err != nil {
			return nil, err
		}
		b.mu.Lock()
		b.info = info
		b.mu.Unlock()
		return info, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(map[string]any), nil
	}
}

// Object returns the value at keyPath. found is false when any segment of the
// path is missing. Maps and slices in the result are copies. When cache is true the result, including a miss, is
// remembered for the lifetime of the Bundle.
func (b *Bundle) Object(ctx context.Context, keyPath string, cache bool) (value any, found bool, err error) {
	useCache := cache && b.cacheEnabled

	if useCache {
		b.mu.RLock()
		hit, ok := b.cache[keyPath]
		b.mu.RUnlock()
		if ok {
			return cloneValue(hit.value), hit.found, nil
		}
	}

	info, err := b.loadInfo(ctx)
	if err != nil {
		return nil, false, err
	}

	value, found = Lookup(info, keyPath)
	if useCache {
		b.mu.Lock()
		b.cache[keyPath] = lookup{value: value, found: found}
		b.mu.Unlock()
		b.log.Debug("cached key path", zap.String("bundle", b.dir), zap.String("key_path", keyPath), zap.Bool("found", found))
	}
	return cloneValue(value), found, nil
}

// Value is a typed Object lookup with caching on. ok is false when the key
// path is missing or the value is not a T. Numbers convert to any numeric T
// as long as the value survives the conversion unchanged, so build: 42 reads
// as an int whichever info format holds it.
func Value[T any](ctx context.Context, b *Bundle, keyPath string) (T, bool, error) {
	var zero T

	v, found, err := b.Object(ctx, keyPath, true)
	if err != nil || !found {
		return zero, false, err
	}
	if t, ok := v.(T); ok {
		return t, true, nil
	}
	if t, ok := convertNumber[T](v); ok {
		return t, true, nil
	}
	return zero, false, nil
}

// convertNumber converts a decoded number to T. It fails for non-numeric
// values and for conversions that would truncate, overflow or flip sign.
func convertNumber[T any](v any) (T, bool) {
	var zero T

	target := reflect.TypeOf((*T)(nil)).Elem()
	src := reflect.ValueOf(v)
	if !src.IsValid() || !isNumber(target.Kind()) || !isNumber(src.Kind()) {
		return zero, false
	}
	if isUnsigned(target.Kind()) && isNegative(src) {
		return zero, false
	}

	out := src.Convert(target)
	if isNegative(out) != isNegative(src) || !out.Convert(src.Type()).Equal(src) {
		return zero, false
	}
	return out.Interface().(T), true
}

func isNumber(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

func isUnsigned(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isNegative(v reflect.Value) bool {
	switch {
	case v.CanInt():
		return v.Int() < 0
	case v.CanFloat():
		return v.Float() < 0
	}
	return false
}

// Lookup walks a period-separated key path through nested maps.
func Lookup(m map[string]any, keyPath string) (any, bool) {
	if keyPath == "" {
		return nil, false
	}

	var cur any = m
	for _, key := range strings.Split(keyPath, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[key]
			if !ok {
				return nil, false
			}
			cur = v
		case map[any]any:
			v, ok := node[key]
			if !ok {
				return nil, false
			}
			cur = v
		default:
			return nil, false
		}
	}
	return cur, true
}

func (b *Bundle) load() (map[string]any, error) {
	data, err := os.ReadFile(b.infoPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", b.infoPath, err)
	}

	info := make(map[string]any)
	switch filepath.Ext(b.infoPath) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &info)
	case ".toml":
		err = toml.Unmarshal(data, &info)
	case ".json":
		err = sonic.Unmarshal(data, &info)
	default:
		err = fmt.Errorf("unsupported info format")
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", b.infoPath, err)
	}
	if info == nil {
		info = make(map[string]any)
	}

	b.log.Debug("loaded bundle info", zap.String("path", b.infoPath), zap.Int("keys", len(info)))
	return info, nil
}

func findInfo(dir string) (string, bool) {
	for _, name := range InfoFiles {
		p := filepath.Join(dir, name)
		if fsutil.FileExists(p) && !fsutil.DirectoryExists(p) {
			return p, true
		}
	}
	return "", false
}

// cloneValue deep-copies the maps and slices a decoder produces so callers
// cannot modify the loaded dictionary.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
