package polyhedron

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/polyblade/pkg/errors"
	"github.com/matzehuels/polyblade/pkg/observability"
	"github.com/matzehuels/polyblade/pkg/shape"
)

// Layout holds per-vertex positions keyed by handle. The interpreter reads
// it only to gate contractions and keeps its handle set in step with the
// shape.
type Layout interface {
	Len() int
	Has(h shape.Handle) bool
	Handles() []shape.Handle
	Spawn(h shape.Handle, origins []shape.Handle)
	Forget(h shape.Handle)
	Separation(a, b shape.Handle) float64
	Advance(dt time.Duration, contracting []shape.Edge)
}

// Polyhedron is a shape under animated transformation. It owns the shape,
// its running Conway name and the transaction queue. It is not safe for
// concurrent use.
type Polyhedron struct {
	ID     uuid.UUID
	Logger *log.Logger

	name   string
	shape  *shape.Shape
	layout Layout
	queue  []Transaction
	cfg    Config
	broken error
}

// New wraps s and gives every vertex a layout position.
func New(name string, s *shape.Shape, l Layout, cfg Config) (*Polyhedron, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Polyhedron{
		ID:     uuid.New(),
		name:   name,
		shape:  s,
		layout: l,
		cfg:    cfg,
	}
	if err := p.sync(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Polyhedron) logger() *log.Logger {
	if p.Logger == nil {
		p.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return p.Logger
}

// Name returns the Conway notation of the current shape.
func (p *Polyhedron) Name() string { return p.name }

// Shape returns the underlying shape.
func (p *Polyhedron) Shape() *shape.Shape { return p.shape }

// Layout returns the position store.
func (p *Polyhedron) Layout() Layout { return p.layout }

// Pending returns a copy of the queue, head first.
func (p *Polyhedron) Pending() []Transaction { return slices.Clone(p.queue) }

// Idle reports whether the queue is empty.
func (p *Polyhedron) Idle() bool { return len(p.queue) == 0 }

// Err returns the fatal error that stopped the polyhedron, if any.
func (p *Polyhedron) Err() error { return p.broken }

// Enqueue appends transactions to the back of the queue.
func (p *Polyhedron) Enqueue(ts ...Transaction) {
	p.queue = append(p.queue, ts...)
}

// Contracting returns the edges of a head Contraction, if any.
func (p *Polyhedron) Contracting() []shape.Edge {
	if len(p.queue) > 0 && p.queue[0].Kind == KindContraction {
		return p.queue[0].Edges
	}
	return nil
}

// Tick advances the layout by dt, then processes at most one step of the
// head transaction. After an invariant violation every later Tick returns
// the same error.
func (p *Polyhedron) Tick(now time.Time, dt time.Duration) error {
	if p.broken != nil {
		return p.broken
	}
	p.layout.Advance(dt, p.Contracting())
	if len(p.queue) == 0 {
		return nil
	}
	err := p.step(now)
	if errors.Fatal(err) {
		p.broken = err
		p.logger().Error("polyhedron halted", "id", p.ID, "name", p.name, "err", err)
	}
	return err
}

// Run ticks with a fixed step until the queue drains or limit ticks pass.
// It returns the time reached.
func (p *Polyhedron) Run(start time.Time, dt time.Duration, limit int) (time.Time, error) {
	now := start
	for range limit {
		if p.Idle() {
			return now, nil
		}
		now = now.Add(dt)
		if err := p.Tick(now, dt); err != nil {
			return now, err
		}
	}
	if !p.Idle() {
		return now, errors.New(errors.ErrCodeInternal, "queue still holds %d transactions after %d ticks", len(p.queue), limit)
	}
	return now, nil
}

func (p *Polyhedron) pop() { p.queue = p.queue[1:] }

// resolve fails if any edge names a handle whose vertex is gone. Such a
// transaction could never converge, so it is reported instead of waited on.
func (p *Polyhedron) resolve(edges []shape.Edge) error {
	for _, e := range edges {
		for _, h := range e {
			if _, err := p.shape.Index(h); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Polyhedron) step(now time.Time) error {
	t := p.queue[0]
	switch t.Kind {
	case KindContraction:
		if err := p.resolve(t.Edges); err != nil {
			p.pop()
			return err
		}
		for _, e := range t.Edges {
			if p.layout.Separation(e[0], e[1]) >= p.cfg.Epsilon {
				observability.Queue().OnStep(t.Kind.String(), false)
				return nil
			}
		}
		p.pop()
		if err := p.shape.Contract(t.Edges); err != nil {
			return err
		}
		p.logger().Debug("contracted", "id", p.ID, "edges", len(t.Edges), "vertices", p.shape.Len())
		if err := p.sync(); err != nil {
			return err
		}

	case KindRelease:
		p.pop()
		if err := p.resolve(t.Edges); err != nil {
			return err
		}
		if err := p.shape.Release(t.Edges); err != nil {
			return err
		}
		if err := p.sync(); err != nil {
			return err
		}

	case KindConway:
		p.pop()
		if err := p.expand(t, now); err != nil {
			return err
		}

	case KindName:
		p.pop()
		if t.Symbol == 'd' && len(p.name) > 0 && p.name[0] == 'd' {
			p.name = p.name[1:]
		} else {
			p.name = string(t.Symbol) + p.name
		}

	case KindShortenName:
		p.pop()
		p.name = p.name[min(t.Count, len(p.name)):]

	case KindWait:
		if !now.After(t.Deadline) {
			observability.Queue().OnStep(t.Kind.String(), false)
			return nil
		}
		p.pop()

	default:
		p.pop()
	}
	observability.Queue().OnStep(t.Kind.String(), true)
	return nil
}

// expand runs the operator's rewrite and pushes its bound script onto the
// front of the queue.
func (p *Polyhedron) expand(t Transaction, now time.Time) error {
	sc, ok := scripts[t.Op]
	if !ok {
		return errors.New(errors.ErrCodeUnsupported, "no script for operator %s", t.Op)
	}
	var edges []shape.Edge
	if sc.rewrite != nil {
		var err error
		if edges, err = sc.rewrite(p.shape); err != nil {
			return err
		}
		if err := p.sync(); err != nil {
			return err
		}
	}
	steps := sc.bind(edges, now, p.cfg.SettleDelay)
	p.queue = append(steps, p.queue...)
	observability.Queue().OnExpand(t.Op.String(), len(steps))
	p.logger().Debug("expanded", "id", p.ID, "op", t.Op, "steps", len(steps), "vertices", p.shape.Len())
	return nil
}

// sync spawns positions for new handles near their origins, forgets dead
// ones, then checks that layout and shape agree on the vertex count.
func (p *Polyhedron) sync() error {
	for _, h := range p.shape.Handles() {
		if !p.layout.Has(h) {
			p.layout.Spawn(h, p.shape.Origins(h))
		}
	}
	for _, h := range p.layout.Handles() {
		if !p.shape.Alive(h) {
			p.layout.Forget(h)
		}
	}
	if p.layout.Len() != p.shape.Len() {
		return errors.New(errors.ErrCodeInvariantViolation,
			"layout holds %d positions for %d vertices", p.layout.Len(), p.shape.Len())
	}
	return p.shape.Validate()
}
