package getter_test

import (
	"fmt"

	"github.com/lambdadepot/fn/getter"
)

func ExampleThen() {
	type contact struct {
		Email string
	}
	type account struct {
		Contact *contact
	}

	email := getter.Then(
		getter.OfPtr(func(a account) *contact { return a.Contact }),
		func(c contact) string { return c.Email },
	)

	fmt.Println(email.Get(account{Contact: &contact{Email: "ops@example.com"}}).GetOrElse("none"))
	fmt.Println(email.Get(account{}).GetOrElse("none"))
	// Output:
	// ops@example.com
	// none
}
