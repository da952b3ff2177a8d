package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auphere/placesync/internal/model"
	"github.com/auphere/placesync/internal/render"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the place-type catalog and its grid parameters",
	Run:   runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, args []string) {
	counts := make(map[string]int)
	for _, pt := range model.AllPlaceTypes {
		counts[pt.Category]++
	}

	fmt.Println(render.TypesTable(model.AllPlaceTypes))
	fmt.Printf("\n%d types: %d leisure, %d food & drink, %d additional\n",
		len(model.AllPlaceTypes),
		counts[model.CategoryLeisure],
		counts[model.CategoryFood],
		counts[model.CategoryAdditional])
}
