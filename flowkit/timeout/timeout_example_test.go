package timeout_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/parallax-labs/lib-flowkit/flowkit"
	"github.com/parallax-labs/lib-flowkit/flowkit/timeout"
)

func ExampleDo() {
	slow := func(_ context.Context) (string, error) {
		time.Sleep(time.Second)
		return "too late", nil
	}

	_, err := timeout.Do(context.Background(), 10*time.Millisecond, slow)

	fmt.Println(errors.Is(err, flowkit.ErrTimeout))

	// Output:
	// true
}
