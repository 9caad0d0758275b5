// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver_test

import (
	"fmt"
	"log"

	"gviegas/gldraw/driver"
	_ "gviegas/gldraw/driver/null"
)

// Example_selectDriver shows how client code picks a
// registered driver by name, obtains a context from it
// and creates a buffer resource.
func Example_selectDriver() {
	// Select a driver to use.
	// Driver packages register themselves on import.
	var drv driver.Driver
	for _, d := range driver.Drivers() {
		if d.Name() == "null" {
			drv = d
			break
		}
	}
	if drv == nil {
		log.Fatal("driver.Drivers: driver not found")
	}
	ctx, err := drv.Open()
	if err != nil {
		log.Fatal(err)
	}
	defer drv.Close()

	fmt.Println(ctx.Version())

	// Store index data in a new buffer and read it back.
	buf, err := ctx.NewBuffer(16, driver.UIndex|driver.UCopyDst)
	if err != nil {
		log.Fatal(err)
	}
	defer buf.Destroy()
	if err := buf.Write(0, []byte{0, 0, 1, 0, 2, 0}); err != nil {
		log.Fatal(err)
	}
	data, ok := buf.ReadBack(0, 6)
	fmt.Println(data, ok)

	// Output:
	// OpenGL 4.1
	// [0 0 1 0 2 0] true
}
