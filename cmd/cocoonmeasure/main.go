// Command cocoonmeasure measures cocoons in calibration photographs.
package main

import "cocoon-morph/internal/cli"

func main() {
	cli.Execute()
}
