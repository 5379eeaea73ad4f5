package panes

// ChangeSet records which style groups changed since the last element write.
// Transform covers every transform key.
type ChangeSet struct {
	Left, Top, Width, Height                 bool
	MaxWidth, MaxHeight, MinWidth, MinHeight bool
	ZIndex                                   bool
	Transform, TransformOrigin               bool
}

// HasChange reports whether any group changed.
func (c ChangeSet) HasChange() bool {
	return c.Left || c.Top || c.Width || c.Height ||
		c.MaxWidth || c.MaxHeight || c.MinWidth || c.MinHeight ||
		c.ZIndex || c.Transform || c.TransformOrigin
}

func (c *ChangeSet) setAll(v bool) {
	*c = ChangeSet{
		Left: v, Top: v, Width: v, Height: v,
		MaxWidth: v, MaxHeight: v, MinWidth: v, MinHeight: v,
		ZIndex: v, Transform: v, TransformOrigin: v,
	}
}

// mark flags the group k belongs to.
func (c *ChangeSet) mark(k Key) {
	switch k {
	case KeyLeft:
		c.Left = true
	case KeyTop:
		c.Top = true
	case KeyWidth:
		c.Width = true
	case KeyHeight:
		c.Height = true
	case KeyMaxWidth:
		c.MaxWidth = true
	case KeyMaxHeight:
		c.MaxHeight = true
	case KeyMinWidth:
		c.MinWidth = true
	case KeyMinHeight:
		c.MinHeight = true
	case KeyZIndex:
		c.ZIndex = true
	case KeyTransformOrigin:
		c.TransformOrigin = true
	default:
		if k.Resolve().IsTransform() {
			c.Transform = true
		}
	}
}
