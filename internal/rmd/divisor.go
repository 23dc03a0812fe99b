package rmd

const (
	// RequiredBeginningAge is the first age at which a distribution is required
	RequiredBeginningAge = 73
	// MinTableAge is the lowest age in the Uniform Lifetime Table
	MinTableAge = 73
	// MaxTableAge is the highest age in the Uniform Lifetime Table
	MaxTableAge = 120
)

// uniformLifetime is the IRS Uniform Lifetime Table (Table III), indexed by
// age - MinTableAge.
var uniformLifetime = [MaxTableAge - MinTableAge + 1]float64{
	26.5, 25.5, 24.6, 23.7, 22.9, // 73-77
	22.0, 21.1, 20.2, 19.4, 18.5, // 78-82
	17.7, 16.8, 16.0, 15.2, 14.4, // 83-87
	13.7, 12.9, 12.2, 11.5, 10.8, // 88-92
	10.1, 9.5, 8.9, 8.4, 7.8, // 93-97
	7.3, 6.8, 6.4, 6.0, 5.6, // 98-102
	5.2, 4.9, 4.6, 4.3, 4.1, // 103-107
	3.9, 3.7, 3.5, 3.4, 3.3, // 108-112
	3.1, 3.0, 2.9, 2.8, 2.7, // 113-117
	2.5, 2.3, 2.0, // 118-120
}

// DivisorFor returns the life expectancy divisor for age. Ages above
// MaxTableAge use the MaxTableAge divisor and ages below MinTableAge use the
// MinTableAge divisor.
func DivisorFor(age int) float64 {
	switch {
	case age > MaxTableAge:
		age = MaxTableAge
	case age < MinTableAge:
		age = MinTableAge
	}
	return uniformLifetime[age-MinTableAge]
}
