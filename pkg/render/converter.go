package render

import (
	"github.com/chazu/hachure/pkg/diag"
	"github.com/chazu/hachure/pkg/entity"
	"github.com/chazu/hachure/pkg/fill"
	"github.com/chazu/hachure/pkg/kernel"
	"github.com/chazu/hachure/pkg/material"
)

// Option configures a Converter during creation.
//
// Example:
//
//	// Plain converter, diagnostics discarded.
//	c := render.NewConverter(libtess.New(), palette)
//
//	// Cached, with diagnostics routed to a logger.
//	c := render.NewConverter(libtess.New(), palette,
//		render.WithCache(render.NewCache()),
//		render.WithSink(diag.Logger(nil)))
type Option func(*options)

type options struct {
	cache *Cache
	sink  diag.Sink
}

// WithCache attaches a result cache consulted before conversion and
// populated after.
func WithCache(c *Cache) Option {
	return func(o *options) { o.cache = c }
}

// WithSink routes pipeline diagnostics to sink instead of discarding
// them.
func WithSink(s diag.Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}

// Converter builds render objects from hatch entities.
type Converter struct {
	tri      kernel.Triangulator
	resolver material.Resolver
	cache    *Cache
	sink     diag.Sink
}

// NewConverter returns a Converter on the given triangulation backend
// and material resolver.
func NewConverter(tri kernel.Triangulator, resolver material.Resolver, opts ...Option) *Converter {
	o := options{sink: diag.Discard}
	for _, opt := range opts {
		opt(&o)
	}
	return &Converter{tri: tri, resolver: resolver, cache: o.cache, sink: o.sink}
}

// Convert builds the render object for one hatch entity. A nil object
// with a nil error means the entity has nothing to draw and no
// material is resolved for it. Entities with a handle are served from
// the cache when one is attached.
func (c *Converter) Convert(h *entity.Hatch) (*Object, error) {
	if c.cache != nil && h.Handle != "" {
		if obj, ok := c.cache.Get(h.Handle); ok {
			return obj, nil
		}
	}

	res, err := fill.Build(h, c.tri, c.sink)
	if err != nil {
		return nil, err
	}
	if res.Empty() {
		return nil, nil
	}

	obj := &Object{
		Entity: h,
		Handle: h.Handle,
		Mesh:   res.Mesh,
		Lines:  res.Lines,
	}
	if res.Mesh != nil {
		obj.Material = c.resolver.Resolve(h, material.ModeShape)
		obj.DepthOffset = ShapeDepthOffset
	} else {
		obj.Material = c.resolver.Resolve(h, material.ModeLine)
		obj.DepthOffset = LineDepthOffset
	}

	if c.cache != nil && h.Handle != "" {
		c.cache.Put(h.Handle, obj)
	}
	return obj, nil
}

// ConvertAll builds render objects for every hatch in the document.
// One malformed entity never aborts its siblings: a conversion error
// becomes an error event on the sink and the entity is skipped.
func (c *Converter) ConvertAll(d *entity.Document) []*Object {
	objs := make([]*Object, 0, len(d.Hatches))
	for _, h := range d.Hatches {
		obj, err := c.Convert(h)
		if err != nil {
			c.sink.Emit(diag.Errorf(h.Handle, -1, "conversion failed: %v", err))
			continue
		}
		if obj == nil {
			continue
		}
		objs = append(objs, obj)
	}
	return objs
}
