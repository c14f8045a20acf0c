// Package cache provides a small generic memo table with a soft size limit.
//
// Nib models use it to remember shape outlines rotated into the direction of
// travel, so paths that keep returning to the same directions do not rotate
// the outline again:
//
//	c := cache.New[float64, []Point](1024)
//	poly := c.GetOrCreate(angle, func() []Point { return rotate(outline, angle) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
