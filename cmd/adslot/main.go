package main

import (
	"fmt"
	"os"

	_ "github.com/kirinyoku/adslot-go/docs"
)

// @title AdSlot API
// @version 1.0
// @description Ad slot booking: availability, pricing, promo codes and checkout.
// @host localhost:8080
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
