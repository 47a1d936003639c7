package main

import (
	"context"
	"fmt"
	"os"

	"lightblue/app"
)

func main() {
	if err := app.AllCommands().Dispatch(context.Background(), os.Args[1:]); err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}
}
