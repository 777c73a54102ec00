// score-check scores a single lead from the command line and prints the
// per-rule breakdown. Handy for tuning the rule table without submitting
// forms.
package main

import (
	"flag"
	"fmt"

	"github.com/jinwf531135-cmd/bi-leads/internal/scoring"
)

func main() {
	phone := flag.String("phone", "", "lead phone number")
	city := flag.String("city", "", "lead city")
	intent := flag.String("intent", "", "lead intent text")
	message := flag.String("message", "", "lead message body")
	flag.Parse()

	engine := scoring.NewEngine(scoring.DefaultRules())
	result := engine.Evaluate(*phone, *city, *intent, *message)

	fmt.Printf("score: %d\n", result.Score)
	if len(result.Breakdown) == 0 {
		fmt.Println("no rules matched")
		return
	}
	for _, rule := range []string{scoring.RulePhone, scoring.RuleIntent, scoring.RuleMessage, scoring.RuleCity} {
		if weight, ok := result.Breakdown[rule]; ok {
			fmt.Printf("  %-8s +%d\n", rule, weight)
		}
	}
}
