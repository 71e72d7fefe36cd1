package calc

// Descriptive statistics over one history snapshot
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64 // population (divides by N)
	Mode   int32
	Median float64
}
