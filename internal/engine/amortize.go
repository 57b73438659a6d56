package engine

import (
	"math"

	"github.com/eoselia/mortgage-engine/pkg/constants"
)

// firstPeriodMonths is the length of the first rate period. Loans longer
// than this switch to the second-period rate for the remainder of the term.
const firstPeriodMonths = 120

// Schedule holds the payment figures produced by amortizing a loan across
// one or two rate periods.
type Schedule struct {
	MonthlyPayment1 float64
	MonthlyPayment2 float64
	TotalInterest   float64
	TotalPayment    float64
}

// MonthlyPayment calculates the fixed monthly payment for a loan using the
// standard annuity formula. Degenerate inputs yield a zero payment rather
// than a division by zero or NaN.
func MonthlyPayment(loanAmount, annualRate float64, termMonths int) float64 {
	if loanAmount <= 0 || annualRate <= 0 || termMonths <= 0 {
		return 0
	}

	monthlyRate := annualRate / constants.MonthsPerYear
	power := math.Pow(1.0+monthlyRate, float64(termMonths))
	return loanAmount * monthlyRate * power / (power - 1.0)
}

// PaymentSchedule simulates the month-by-month amortization of a loan across
// the two rate periods and returns the resulting payment figures.
//
// When the term extends past the first period, the first-period payment is
// quoted over the full term at the first rate; the borrower sees a payment
// that assumes the whole schedule runs at rate 1 before the switch is
// simulated. The second-period payment is then recomputed as a fresh annuity
// over whatever balance remains.
func PaymentSchedule(loanAmount, rate1, rate2 float64, termMonths int) Schedule {
	period1 := termMonths
	period2 := 0
	if termMonths > firstPeriodMonths {
		period1 = firstPeriodMonths
		period2 = termMonths - firstPeriodMonths
	}

	payment1 := MonthlyPayment(loanAmount, rate1, termMonths)

	monthlyRate1 := rate1 / constants.MonthsPerYear
	remainingBalance := loanAmount
	totalInterest := 0.0
	for month := 0; month < period1; month++ {
		interest := remainingBalance * monthlyRate1
		remainingBalance -= payment1 - interest
		totalInterest += interest
	}

	payment2 := 0.0
	if period2 > 0 && remainingBalance > constants.NegligibleBalance {
		monthlyRate2 := rate2 / constants.MonthsPerYear
		payment2 = MonthlyPayment(remainingBalance, rate2, period2)
		for month := 0; month < period2; month++ {
			interest := remainingBalance * monthlyRate2
			remainingBalance -= payment2 - interest
			totalInterest += interest
		}
	}

	return Schedule{
		MonthlyPayment1: payment1,
		MonthlyPayment2: payment2,
		TotalInterest:   totalInterest,
		TotalPayment:    loanAmount + totalInterest,
	}
}
