package window_test

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/bytewin/pkg/window"
)

func ExampleCompare() {
	mine := bytes.Repeat([]byte{0x41}, 16)
	golden := bytes.Repeat([]byte{0x41}, 16)
	golden[8] = 0x42

	res, err := window.Compare(mine, golden, 8, &window.Options{Context: 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range res.Rows {
		if row.Differs {
			fmt.Println(row.Index, window.HexByte(row.A), window.HexByte(row.B), row.Marker())
			continue
		}
		fmt.Println(row.Index, window.HexByte(row.A), window.HexByte(row.B))
	}
	// Output:
	// 6 41 41
	// 7 41 41
	// 8 41 42 ***
	// 9 41 41
}
