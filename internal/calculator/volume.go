package calculator

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultVolumeWindowDays is the default trailing window for VolumeAvg.
const DefaultVolumeWindowDays = 7

// VolumeAvg returns the arithmetic mean of daily USD volume over the most
// recent days records. The window is clamped down to the available record
// count.
func (c *Calculator) VolumeAvg(days int) (float64, error) {
	if days < 1 {
		return 0, fmt.Errorf("%w: days %d must be at least 1", ErrInvalidInput, days)
	}
	if days > len(c.days) {
		days = len(c.days)
	}

	var sum float64
	for _, day := range c.days[:days] {
		sum += day.volumeUSD
	}
	avg := sum / float64(days)

	c.logger.Info("trailing volume", zap.Int("days", days), zap.Float64("avg_volume_usd", avg))
	return avg, nil
}
