package flex

// =============================================================================
// Classification
// =============================================================================

// Class is the sizing classification derived for an item during
// measurement. It is not stored on the item itself.
type Class uint8

const (
	// ClassRegular marks an item sized at its natural length, possibly
	// grown by the shared growth multiplier.
	ClassRegular Class = iota
	// ClassSpacer marks a pure filler item: zero natural length and
	// zero unconstrained-maximum length on the main axis.
	ClassSpacer
	// ClassRelative marks an item carrying an explicit fraction of the
	// container's main-axis length.
	ClassRelative
)

// String returns the configuration name of the class.
func (c Class) String() string {
	switch c {
	case ClassSpacer:
		return "spacer"
	case ClassRelative:
		return "relative"
	default:
		return "regular"
	}
}

// ItemInfo is the cached measurement record for a single item,
// index-aligned with the container's item sequence.
type ItemInfo struct {
	// Length is the resolved main-axis length before growth: the
	// natural length for regular items, proposal×fraction for relative
	// items, zero for spacers.
	Length float64

	// Class is the derived sizing classification.
	Class Class

	// CanGrow reports whether a regular item responds to extra space.
	// Regular items start growable and are downgraded once measurement
	// proves their natural length equals their unconstrained maximum.
	CanGrow bool

	// Fraction is the clamped relative fraction for relative items.
	Fraction float64

	// MaxLength is the item's main-axis length under an Infinite
	// proposal, kept for the growth downgrade test.
	MaxLength float64

	// AlignmentOffset is the cross-axis guide offset measured under the
	// proposed size.
	AlignmentOffset float64
}

// =============================================================================
// Cache - Per-Container Layout Memo
// =============================================================================

// Cache memoizes the last measurement of one container: per-item
// classification and lengths plus the global distribution
// coefficients. It is exclusively owned by its container, rebuilt on
// every Measure call, and revalidated by every Place call.
//
// A zero resolved main length marks the unmeasured state; Place
// re-measures when its bounds do not match the cached length.
type Cache struct {
	items              []ItemInfo
	spacerFill         float64
	growthMultiplier   float64
	maxAlignmentOffset float64
	resolvedMainLength float64
}

// Len returns the number of cached item records. It equals the item
// count of the last measured sequence.
func (c *Cache) Len() int { return len(c.items) }

// Info returns the cached record for the item at index i.
func (c *Cache) Info(i int) ItemInfo { return c.items[i] }

// SpacerFill returns the length assigned to every spacer item.
func (c *Cache) SpacerFill() float64 { return c.spacerFill }

// GrowthMultiplier returns the scalar applied to growable regular
// items' natural lengths.
func (c *Cache) GrowthMultiplier() float64 { return c.growthMultiplier }

// MaxAlignmentOffset returns the largest per-item alignment offset
// observed during the last measurement.
func (c *Cache) MaxAlignmentOffset() float64 { return c.maxAlignmentOffset }

// ResolvedMainLength returns the total main-axis length the cache was
// computed for. It is the staleness key checked at placement time.
func (c *Cache) ResolvedMainLength() float64 { return c.resolvedMainLength }

// reset clears the cache back to its unmeasured state, keeping the
// item slice's capacity.
func (c *Cache) reset() {
	c.items = c.items[:0]
	c.spacerFill = 0
	c.growthMultiplier = 1
	c.maxAlignmentOffset = 0
	c.resolvedMainLength = 0
}
