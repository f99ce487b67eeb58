// Package sweep evaluates the trip duration model over a discrete range of
// cruising speeds. Samples are always returned in ascending speed order,
// whether they were computed sequentially or by a pool of workers.
package sweep
