package throttle_test

import (
	"fmt"
	"time"

	"github.com/parallax-labs/lib-flowkit/flowkit/throttle"
)

func ExampleThrottler_Call() {
	notify, err := throttle.New(time.Minute, func(msg string) {
		fmt.Println("sent:", msg)
	})
	if err != nil {
		return
	}

	fmt.Println(notify.Call("disk usage high"))
	fmt.Println(notify.Call("disk usage high again"))

	// Output:
	// sent: disk usage high
	// true
	// false
}
