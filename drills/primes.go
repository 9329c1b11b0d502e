package drills

import (
	"fmt"
	"strconv"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// sievePrimes returns all primes <= n using the sieve of Eratosthenes.
func sievePrimes(n int) []int {
	composite := make([]bool, n+1)
	var out []int
	for i := 2; i <= n; i++ {
		if composite[i] {
			continue
		}
		out = append(out, i)
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}
	return out
}

// Primes lists the primes up to N, by trial division or with a sieve.
func Primes(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "primes [--sieve] N",
		Short: "Print every prime number up to and including N.",
	}

	useSieve := cmd.Flags().BoolLong("sieve", 's', "use the sieve of Eratosthenes")

	return cmd.RunE(p, func() error {
		args := cmd.Flags().Args()
		if len(args) != 1 {
			return fmt.Errorf("expected exactly one argument, got %d", len(args))
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 2 {
			return fmt.Errorf("N must be an integer >= 2, got %q", args[0])
		}

		w := p.Stdout()
		if *useSieve {
			for _, prime := range sievePrimes(n) {
				fmt.Fprintln(w, prime)
			}
			return nil
		}

		for i := 2; i <= n; i++ {
			if isPrime(i) {
				fmt.Fprintln(w, i)
			}
		}
		return nil
	})
}

var _ sandbox.ProcessFunc = Primes

func init() {
	mustRegister(Drill{
		Name:  "primes",
		Topic: "loops",
		Short: "Prime numbers by trial division or sieve.",
		Day:   5,
		Proc:  Primes,
	})
}
