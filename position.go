package panes

import (
	"math"
)

// Options configures a new Position.
type Options struct {
	// CalculateTransform keeps the Transform store current after every
	// element write even when nothing subscribes to it.
	CalculateTransform bool
	// Ortho folds left / top into the transform matrix instead of writing
	// the left and top styles.
	Ortho bool
	// Initial places the position the first time it is bound to an element
	// while left / top are still null.
	Initial InitialHelper
	// Validators are registered before the initial data is applied.
	Validators []Validator
	// Data is applied with Set once the position is created.
	Data Update
}

// SetOptions modifies a single Set call.
type SetOptions struct {
	// ImmediateElementUpdate writes the element styles before Set returns
	// instead of on the next frame.
	ImmediateElementUpdate bool
	// Rest is passed through to validators as ValidationData.Rest.
	Rest map[string]any
}

// GetOptions filters Position.Get.
type GetOptions struct {
	// Keys restricts the result; nil means every data key.
	Keys []Key
	// Exclude removes keys from the result.
	Exclude []Key
	// Numeric substitutes numeric defaults for null fields.
	Numeric bool
	// DropNull leaves null fields out of the result.
	DropNull bool
}

// Dimension is the width / height pair published by the Dimension store.
type Dimension struct {
	Width, Height Value
}

// Position holds the placement of one pane. Every change goes through Set,
// which resolves relative values, runs the validators when an element is
// bound, commits the result and schedules the element write for the next
// frame.
type Position struct {
	engine *Engine
	id     uint32
	parent Parent

	data       PositionData
	transforms Transforms
	validators Validators
	changes    ChangeSet
	styleCache styleCache

	animate *AnimationAPI
	state   *StateAPI

	calculateTransform bool
	ortho              bool
	initial            InitialHelper

	main           *Store[PositionData]
	fields         [keyCount]*Store[Value]
	dimension      *Store[Dimension]
	observable     *Store[bool]
	observableW    *Store[bool]
	observableH    *Store[bool]
	resizeObserved *Store[ResizeObservation]
	transform      *Store[TransformData]
	element        *Store[Element]

	queued       bool
	elemUpdated  *future
	defaultSaved bool
	disposed     bool
}

func newPosition(e *Engine, id uint32, parent Parent, opts Options) *Position {
	p := &Position{
		engine:             e,
		id:                 id,
		parent:             parent,
		calculateTransform: opts.CalculateTransform,
		ortho:              opts.Ortho,
		initial:            opts.Initial,
	}
	p.animate = &AnimationAPI{position: p}
	p.state = newStateAPI(p)
	p.validators.revalidate = func() { p.Set(nil) }

	p.main = newComparableStore(p.data)
	p.main.write = func(d PositionData) { p.Set(d.Update()) }
	for _, k := range DataKeys {
		s := &Store[Value]{equal: func(a, b Value) bool { return a.Equal(b) }}
		s.write = func(v Value) { p.Set(Update{k: v}) }
		p.fields[k] = s
	}
	p.dimension = newComparableStore(Dimension{})
	p.dimension.write = func(d Dimension) {
		p.Set(Update{KeyWidth: d.Width, KeyHeight: d.Height})
	}
	p.observable = newComparableStore(false)
	p.observableW = newComparableStore(false)
	p.observableH = newComparableStore(false)
	p.resizeObserved = newComparableStore(ResizeObservation{})
	p.resizeObserved.write = p.setResizeObserved
	p.transform = NewStore(TransformData{})
	p.element = newComparableStore[Element](nil)
	return p
}

// ID returns the engine-unique id of the position.
func (p *Position) ID() uint32 { return p.id }

// Engine returns the owning engine.
func (p *Position) Engine() *Engine { return p.engine }

// Position implements Positioned.
func (p *Position) Position() *Position { return p }

// Parent returns the owner of the position.
func (p *Position) Parent() Parent { return p.parent }

// SetParent rebinds the position. The style cache is dropped and, when the
// new parent has an element, the current data is applied to it.
func (p *Position) SetParent(parent Parent) {
	p.styleCache.reset()
	p.parent = parent
	p.element.set(targetElement(parent))
	if parent != nil {
		p.Set(nil)
	}
}

// Element returns the connected element of the parent, or nil.
func (p *Position) Element() Element { return targetElement(p.parent) }

// Animate returns the tween API of the position.
func (p *Position) Animate() *AnimationAPI { return p.animate }

// State returns the saved state API of the position.
func (p *Position) State() *StateAPI { return p.state }

// Transforms returns the committed transform set.
func (p *Position) Transforms() *Transforms { return &p.transforms }

// Validators returns the validator list.
func (p *Position) Validators() *Validators { return &p.validators }

// Data returns a copy of the current data.
func (p *Position) Data() PositionData { return p.data }

// Get copies the current data into an Update.
func (p *Position) Get(opts GetOptions) Update {
	keys := DataKeys
	if opts.Keys != nil {
		keys = make([]Key, 0, len(opts.Keys))
		for _, k := range opts.Keys {
			keys = append(keys, k.Resolve())
		}
	}
	out := make(Update, len(keys))
outer:
	for _, k := range keys {
		for _, ex := range opts.Exclude {
			if ex.Resolve() == k {
				continue outer
			}
		}
		v := p.data.Get(k)
		if v.IsNull() && opts.Numeric {
			if def, ok := NumericDefault(k); ok {
				v = Num(def)
			}
		}
		if v.IsNull() && opts.DropNull {
			continue
		}
		out[k] = v
	}
	return out
}

// Subscribe calls fn with the current data now and after every committed
// change. It returns the unsubscribe function.
func (p *Position) Subscribe(fn func(PositionData)) func() {
	return p.main.Subscribe(fn)
}

// Update applies the update fn derives from the current data.
func (p *Position) Update(fn func(PositionData) Update) *Position {
	return p.Set(fn(p.data))
}

// Set applies u. See SetWithOptions.
func (p *Position) Set(u Update) *Position {
	return p.SetWithOptions(u, SetOptions{})
}

// SetWithOptions applies u. Relative strings are resolved against the
// current data first. With a bound element the candidate then runs through
// the validators, and a veto leaves everything unchanged. Committed values
// are normalized: left, top, zIndex and sizes are rounded, scale is clamped
// to [0, 1000].
func (p *Position) SetWithOptions(u Update, opts SetOptions) *Position {
	if p.disposed {
		if p.engine.debug {
			debugCheckDisposed(p, "set")
		}
		return p
	}
	if !IsPositionable(p.parent) {
		return p
	}

	el := targetElement(p.parent)
	u = u.Clone()
	if v, ok := u[KeyTransformOrigin]; ok && !v.IsNull() && !Origin(v.Text()).Valid() {
		p.engine.logger.Warn("unknown transform origin", "value", v.String())
		delete(u, KeyTransformOrigin)
	}

	if el != nil && !p.styleCache.hasData(el) {
		p.styleCache.update(el)
		if !p.styleCache.hasWillChange {
			el.SetStyle("will-change", "transform")
		}
		p.changes.setAll(true)
		p.element.set(el)
	}

	convertStringData(u, &p.data, el, p.engine.logger)

	if el != nil {
		cand := p.updatePosition(u, el, opts)
		if cand == nil {
			return p
		}
		u = cand.Update()
	}

	p.commit(u)
	p.updateResizeObservable()

	if el == nil {
		p.updateSubscribers()
		p.changes = ChangeSet{}
		return p
	}

	if !p.defaultSaved {
		p.defaultSaved = true
		p.state.saveDefault()
	}
	if opts.ImmediateElementUpdate {
		p.writeElement(el)
	} else {
		p.engine.updates.add(p.engine, p)
	}
	return p
}

// updatePosition builds the candidate for u and runs it through the
// validators. It returns nil when a validator vetoes.
func (p *Position) updatePosition(u Update, el Element, opts SetOptions) *PositionData {
	sc := &p.styleCache
	cand := p.data
	cand.Apply(u)

	var width, height float64
	if f, ok := cand.Width.Float(); ok {
		width = f
	} else {
		width = sc.offsetWidth()
		if cand.Width.IsNull() {
			cand.Width = Num(width)
		}
	}
	if f, ok := cand.Height.Float(); ok {
		height = f
	} else {
		height = sc.offsetHeight()
		if cand.Height.IsNull() {
			cand.Height = Num(height)
		}
	}

	viewport := p.engine.viewport
	if p.initial != nil {
		if _, ok := cand.Left.Float(); !ok {
			cand.Left = Num(p.initial.Left(width, viewport))
		}
		if _, ok := cand.Top.Float(); !ok {
			cand.Top = Num(p.initial.Top(height, viewport))
		}
	}

	if !p.validators.Enabled() || p.validators.Len() == 0 {
		return &cand
	}

	v := &ValidationData{
		Position:   &cand,
		Parent:     p.parent,
		El:         el,
		Computed:   sc.computed,
		Transforms: &p.transforms,
		Width:      width,
		Height:     height,
		MarginLeft: sc.marginLeft,
		MarginTop:  sc.marginTop,
		MaxWidth:   firstNumeric(cand.MaxWidth, sc.maxWidth),
		MaxHeight:  firstNumeric(cand.MaxHeight, sc.maxHeight),
		Viewport:   viewport,
		Rest:       opts.Rest,
	}
	if !isMinimized(p.parent) {
		v.MinWidth = firstNumeric(cand.MinWidth, sc.minWidth).Or(0)
		v.MinHeight = firstNumeric(cand.MinHeight, sc.minHeight).Or(0)
	}
	return p.validators.run(v)
}

func firstNumeric(a, b Value) Value {
	if _, ok := a.Float(); ok {
		return a
	}
	if _, ok := b.Float(); ok {
		return b
	}
	return Null()
}

// commit stores the normalized values of u and flags what changed.
func (p *Position) commit(u Update) {
	d := &p.data
	c := &p.changes
	for _, k := range u.sortedKeys() {
		v := u[k]
		switch {
		case k == KeyLeft || k == KeyTop || k == KeyZIndex:
			f, ok := v.Float()
			if !ok {
				continue
			}
			v = Num(math.Round(f))
		case k == KeyMaxWidth || k == KeyMaxHeight || k == KeyMinWidth || k == KeyMinHeight:
			if f, ok := v.Float(); ok {
				v = Num(math.Round(f))
			} else if !v.IsNull() {
				continue
			}
		case k == KeyWidth || k == KeyHeight:
			if f, ok := v.Float(); ok {
				v = Num(math.Round(f))
			} else if !v.IsNull() && !v.IsObservable() {
				continue
			}
		case k == KeyScale:
			if f, ok := v.Float(); ok {
				v = Num(clamp(f, 0, 1000))
			} else if !v.IsNull() {
				continue
			}
		case k.IsTransform():
			if _, ok := v.Float(); !ok && !v.IsNull() {
				continue
			}
		case k == KeyTransformOrigin:
			if !v.IsNull() && !Origin(v.Text()).Valid() {
				continue
			}
		}

		if d.Get(k).Equal(v) {
			continue
		}
		d.Set(k, v)
		if k.IsTransform() {
			p.transforms.setValue(k, v)
		}
		c.mark(k)
	}
}

func (p *Position) updateResizeObservable() {
	w := p.data.Width.IsObservable()
	h := p.data.Height.IsObservable()
	p.observableW.set(w)
	p.observableH.set(h)
	p.observable.set(w || h)
}

func (p *Position) setResizeObserved(obs ResizeObservation) {
	p.styleCache.resizeObserved = obs
	p.resizeObserved.set(obs)
	if p.observable.Get() {
		p.Set(nil)
	}
}

// ElementUpdated returns a channel closed after the next element write.
func (p *Position) ElementUpdated() <-chan struct{} {
	if p.elemUpdated == nil {
		p.elemUpdated = newFuture()
	}
	return p.elemUpdated.done
}

func (p *Position) resolveElementUpdated() {
	if p.elemUpdated != nil {
		p.elemUpdated.resolve(AnimationResult{})
		p.elemUpdated = nil
	}
}

// Dispose cancels every tween, drops the validators and unbinds the
// element. Later calls on the position do nothing, or panic in debug mode.
func (p *Position) Dispose() {
	if p.disposed {
		return
	}
	p.engine.animations.Cancel(p, CancelEvery)
	p.validators.revalidate = nil
	p.validators.Clear()
	p.styleCache.reset()
	p.element.set(nil)
	p.resolveElementUpdated()
	p.disposed = true
}

// IsDisposed reports whether Dispose was called.
func (p *Position) IsDisposed() bool { return p.disposed }

// --- Field accessors ---

// Left returns the left offset.
func (p *Position) Left() Value { return p.data.Left }

// Top returns the top offset.
func (p *Position) Top() Value { return p.data.Top }

// Width returns the width; it may be "auto" or "inherit".
func (p *Position) Width() Value { return p.data.Width }

// Height returns the height; it may be "auto" or "inherit".
func (p *Position) Height() Value { return p.data.Height }

// MaxWidth returns the max width, or null when unset.
func (p *Position) MaxWidth() Value { return p.data.MaxWidth }

// MaxHeight returns the max height, or null when unset.
func (p *Position) MaxHeight() Value { return p.data.MaxHeight }

// MinWidth returns the min width, or null when unset.
func (p *Position) MinWidth() Value { return p.data.MinWidth }

// MinHeight returns the min height, or null when unset.
func (p *Position) MinHeight() Value { return p.data.MinHeight }

// RotateX returns the rotation about the X axis in degrees.
func (p *Position) RotateX() Value { return p.data.RotateX }

// RotateY returns the rotation about the Y axis in degrees.
func (p *Position) RotateY() Value { return p.data.RotateY }

// RotateZ returns the rotation about the Z axis in degrees.
func (p *Position) RotateZ() Value { return p.data.RotateZ }

// Scale returns the uniform scale factor.
func (p *Position) Scale() Value { return p.data.Scale }

// TranslateX returns the X translation in pixels.
func (p *Position) TranslateX() Value { return p.data.TranslateX }

// TranslateY returns the Y translation in pixels.
func (p *Position) TranslateY() Value { return p.data.TranslateY }

// TranslateZ returns the Z translation in pixels.
func (p *Position) TranslateZ() Value { return p.data.TranslateZ }

// ZIndex returns the stacking order.
func (p *Position) ZIndex() Value { return p.data.ZIndex }

// Rotation is an alias of RotateZ.
func (p *Position) Rotation() Value { return p.data.RotateZ }

// TransformOrigin returns the pivot; the zero Origin means top left.
func (p *Position) TransformOrigin() Origin { return p.data.TransformOrigin }

// SetLeft sets left; a relative string such as "+=10" is resolved first.
func (p *Position) SetLeft(v Value) *Position { return p.Set(Update{KeyLeft: v}) }

// SetTop sets top; a relative string is resolved first.
func (p *Position) SetTop(v Value) *Position { return p.Set(Update{KeyTop: v}) }

// SetWidth sets the width, a number, "auto" or "inherit".
func (p *Position) SetWidth(v Value) *Position { return p.Set(Update{KeyWidth: v}) }

// SetHeight sets the height, a number, "auto" or "inherit".
func (p *Position) SetHeight(v Value) *Position { return p.Set(Update{KeyHeight: v}) }

// SetMaxWidth sets the max width.
func (p *Position) SetMaxWidth(v Value) *Position { return p.Set(Update{KeyMaxWidth: v}) }

// SetMaxHeight sets the max height.
func (p *Position) SetMaxHeight(v Value) *Position { return p.Set(Update{KeyMaxHeight: v}) }

// SetMinWidth sets the min width.
func (p *Position) SetMinWidth(v Value) *Position { return p.Set(Update{KeyMinWidth: v}) }

// SetMinHeight sets the min height.
func (p *Position) SetMinHeight(v Value) *Position { return p.Set(Update{KeyMinHeight: v}) }

// SetRotateX sets the X rotation in degrees.
func (p *Position) SetRotateX(v Value) *Position { return p.Set(Update{KeyRotateX: v}) }

// SetRotateY sets the Y rotation in degrees.
func (p *Position) SetRotateY(v Value) *Position { return p.Set(Update{KeyRotateY: v}) }

// SetRotateZ sets the Z rotation in degrees.
func (p *Position) SetRotateZ(v Value) *Position { return p.Set(Update{KeyRotateZ: v}) }

// SetRotation is an alias of SetRotateZ.
func (p *Position) SetRotation(v Value) *Position { return p.Set(Update{KeyRotation: v}) }

// SetScale sets the scale, clamped to [0, 1000].
func (p *Position) SetScale(v Value) *Position { return p.Set(Update{KeyScale: v}) }

// SetTranslateX sets the X translation.
func (p *Position) SetTranslateX(v Value) *Position { return p.Set(Update{KeyTranslateX: v}) }

// SetTranslateY sets the Y translation.
func (p *Position) SetTranslateY(v Value) *Position { return p.Set(Update{KeyTranslateY: v}) }

// SetTranslateZ sets the Z translation.
func (p *Position) SetTranslateZ(v Value) *Position { return p.Set(Update{KeyTranslateZ: v}) }

// SetZIndex sets the stacking order.
func (p *Position) SetZIndex(v Value) *Position { return p.Set(Update{KeyZIndex: v}) }

// SetTransformOrigin sets the pivot; the zero Origin clears it.
func (p *Position) SetTransformOrigin(o Origin) *Position {
	return p.Set(Update{KeyTransformOrigin: OriginValue(o)})
}

// --- Stores ---

// Stores exposes the observable views of a Position.
type Stores struct {
	p *Position
}

// Stores returns the observable views of the position.
func (p *Position) Stores() Stores { return Stores{p: p} }

// Field returns the store of one data key. Setting it calls Position.Set.
func (s Stores) Field(k Key) Writable[Value] {
	k = k.Resolve()
	if k >= keyCount || s.p.fields[k] == nil {
		return nil
	}
	return s.p.fields[k]
}

// Data returns the store of the whole data record.
func (s Stores) Data() Writable[PositionData] { return s.p.main }

// Dimension returns the width / height store. Setting it calls Set.
func (s Stores) Dimension() Writable[Dimension] { return s.p.dimension }

// ResizeObservable is true while width or height is "auto" / "inherit".
func (s Stores) ResizeObservable() Readable[bool] { return readOnly[bool]{s.p.observable} }

// ResizeObservableWidth is true while width is "auto" / "inherit".
func (s Stores) ResizeObservableWidth() Readable[bool] { return readOnly[bool]{s.p.observableW} }

// ResizeObservableHeight is true while height is "auto" / "inherit".
func (s Stores) ResizeObservableHeight() Readable[bool] { return readOnly[bool]{s.p.observableH} }

// ResizeObserved receives the element box from the host's resize observer.
// Setting it re-validates the position while it is resize observable.
func (s Stores) ResizeObserved() Writable[ResizeObservation] { return s.p.resizeObserved }

// Transform publishes the transform data after each element write. It is
// only computed while subscribed or when Options.CalculateTransform is set.
func (s Stores) Transform() Readable[TransformData] { return readOnly[TransformData]{s.p.transform} }

// Element publishes the bound element.
func (s Stores) Element() Readable[Element] { return readOnly[Element]{s.p.element} }
