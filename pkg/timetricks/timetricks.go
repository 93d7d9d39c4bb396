package timetricks

import (
	"fmt"
	"time"
)

// LargeRun is the selection size from which estimates are given as a range,
// since rate limiting and retries make long runs drift.
const LargeRun = 100

// Estimate returns how long n rate limited requests take at the given delay.
// high is 1.5x low for large runs and equal to low otherwise.
func Estimate(n int, delay time.Duration) (low, high time.Duration) {
	low = time.Duration(n) * delay
	if n < LargeRun {
		return low, low
	}
	return low, low * 3 / 2
}

// Minutes truncates d to whole minutes.
func Minutes(d time.Duration) int {
	return int(d / time.Minute)
}

// DescribeEstimate renders the estimate for n stations as a sentence.
func DescribeEstimate(n int, delay time.Duration) string {
	low, high := Estimate(n, delay)
	if n < LargeRun {
		return fmt.Sprintf("Estimated time: ~%d minutes", Minutes(low))
	}
	return fmt.Sprintf("This will take approximately %d-%d minutes due to API rate limiting...",
		Minutes(low), Minutes(high))
}
