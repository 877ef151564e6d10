package domain

type Airplane struct {
	ID              int64
	TailNumber      string
	Model           string
	TotalSeats      int
	EconomySeats    int
	BusinessSeats   int
	FirstClassSeats int
}

type Airport struct {
	ID      int64
	Name    string
	City    string
	Country string
	Code    string
}
