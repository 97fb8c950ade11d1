package constants_test

import (
	"fmt"

	"github.com/suwonmate/catalogdb/pkg/constants"
)

func ExampleResultFileName() {
	fmt.Println(constants.ResultFileName("2024.1"))
	fmt.Println(constants.ResultFileName("2024.1") + constants.CompressedExt)
	// Output:
	// result_2024.1.json
	// result_2024.1.json.br
}
