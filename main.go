// =============================================================================
// Product ETL - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Product ETL CLI application. It hands
// control to the Cobra commands in the cmd package.
//
// USAGE:
//   productetl run      - Transform the product file
//   productetl version  - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Parsing, transformation, reporting and output writers
//   - pkg/       : File utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/product-etl/cmd"
)

func main() {
	cmd.Execute()
}
