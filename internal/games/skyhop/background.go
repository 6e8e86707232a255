package skyhop

import "github.com/arcadehop/skyhop/internal/config"

// Background maintains the decorative scroll-relative tile rows behind the
// playfield. Rows follow their own window: a new row is generated when the
// camera top comes within two tile-heights of the topmost row, and rows are
// purged once they fall more than one tile-height behind the camera bottom.
type Background struct {
	cfg  config.BackgroundConfig
	rng  *RNG
	rows []TileRow
	topY float64
}

// TileRow is one band of background decoration. Pattern seeds the
// deterministic placement of glyphs within the row at render time.
type TileRow struct {
	Y       float64
	Pattern uint64
}

// NewBackground creates a background tiler.
func NewBackground(seed int64, cfg config.BackgroundConfig) *Background {
	return &Background{
		cfg:  cfg,
		rng:  NewRNG(seed),
		rows: make([]TileRow, 0, 16),
	}
}

// Reset re-seeds the tiler and fills the initial camera window.
func (b *Background) Reset(seed int64, cameraTopY, cameraBottomY float64) {
	b.rng = NewRNG(seed)
	b.rows = b.rows[:0]
	b.topY = cameraBottomY
	b.Update(cameraTopY, cameraBottomY)
}

// Update generates rows ahead of the camera top and purges rows behind
// the camera bottom.
func (b *Background) Update(cameraTopY, cameraBottomY float64) {
	for b.topY > cameraTopY-2*b.cfg.TileHeight {
		b.topY -= b.cfg.TileHeight
		b.rows = append(b.rows, TileRow{Y: b.topY, Pattern: b.rng.Next()})
	}

	keep := b.rows[:0]
	for _, row := range b.rows {
		if row.Y <= cameraBottomY+b.cfg.TileHeight {
			keep = append(keep, row)
		}
	}
	b.rows = keep
}

// Rows returns the live tile rows.
func (b *Background) Rows() []TileRow {
	return b.rows
}
