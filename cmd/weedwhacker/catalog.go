package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/weed-whacker/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List tools, weeds and weather events",
	Long: `Shows the tools you can buy, the weeds that grow and the weather
that can strike, as loaded from the catalog search path.

Examples:
  weedwhacker catalog
  weedwhacker catalog --catalog ./my-tools.yaml`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	catalogCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Path to custom catalog YAML")
}

func runCatalog(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	cat, err := catalog.Load(flagCatalog, cfg.Player.ChopCooldownMS)
	if err != nil {
		return err
	}

	printTools(cat)
	fmt.Println()
	printWeeds(cat)
	fmt.Println()
	printEvents(cat)
	return nil
}

func printTools(cat *catalog.Catalog) {
	fmt.Println("Tools:")
	fmt.Println()

	keyW := columnWidth("Key", cat.Tools(), func(t catalog.Tool) string { return t.Key })
	nameW := columnWidth("Name", cat.Tools(), func(t catalog.Tool) string { return t.Name })

	fmt.Printf("  %-*s  %-*s  %6s  %8s  %6s  %5s  %5s\n", keyW, "Key", nameW, "Name", "Power", "Cooldown", "Uses", "Reach", "Cost")
	fmt.Printf("  %-*s  %-*s  %6s  %8s  %6s  %5s  %5s\n", keyW, "---", nameW, "----", "-----", "--------", "----", "-----", "----")
	for _, t := range cat.Tools() {
		uses := "-"
		if t.Breakable() {
			uses = fmt.Sprintf("%d", t.Longevity)
		}
		cost := fmt.Sprintf("$%d", t.Cost)
		if t.Starter {
			cost = "start"
		}
		fmt.Printf("  %-*s  %-*s  %6.1f  %6dms  %6s  %5d  %5s\n",
			keyW, t.Key, nameW, t.Name, t.Efficiency, t.Cooldown, uses, len(t.Reach), cost)
	}
}

func printWeeds(cat *catalog.Catalog) {
	fmt.Println("Weeds:")
	fmt.Println()

	keyW := columnWidth("Key", cat.Weeds(), func(w catalog.Weed) string { return w.Key })
	nameW := columnWidth("Name", cat.Weeds(), func(w catalog.Weed) string { return w.Name })

	fmt.Printf("  %-*s  %-*s  %9s  %7s  %6s\n", keyW, "Key", nameW, "Name", "Toughness", "Regrow", "Weight")
	fmt.Printf("  %-*s  %-*s  %9s  %7s  %6s\n", keyW, "---", nameW, "----", "---------", "------", "------")
	for _, w := range cat.Weeds() {
		regrow := "never"
		if w.Regrow > 0 {
			regrow = fmt.Sprintf("%d", w.Regrow)
		}
		fmt.Printf("  %-*s  %-*s  %9.1f  %7s  %6.2f\n", keyW, w.Key, nameW, w.Name, w.Toughness, regrow, w.Weight)
	}
}

func printEvents(cat *catalog.Catalog) {
	fmt.Println("Weather:")
	fmt.Println()

	keyW := columnWidth("Key", cat.Events(), func(e catalog.Event) string { return e.Key })

	fmt.Printf("  %-*s  %8s  %s\n", keyW, "Key", "Duration", "Effects")
	fmt.Printf("  %-*s  %8s  %s\n", keyW, "---", "--------", "-------")
	for _, e := range cat.Events() {
		dur := "default"
		if !e.Default {
			dur = "forever"
			if !e.Indefinite() {
				dur = fmt.Sprintf("%ds", e.Duration/1000)
			}
		}
		fmt.Printf("  %-*s  %8s  %s\n", keyW, e.Key, dur, effects(e.Multipliers))
	}
}

// effects lists the multipliers that differ from 1.
func effects(m catalog.Multipliers) string {
	var parts []string
	add := func(name string, v float64) {
		if v != 1 {
			parts = append(parts, fmt.Sprintf("%s x%.2g", name, v))
		}
	}
	add("spawn", m.WeedSpawnRate)
	add("growth", m.WeedGrowthRate)
	add("speed", m.PlayerSpeed)
	add("income", m.Income)
	add("cooldown", m.ToolCooldown)
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func columnWidth[T any](header string, rows []T, field func(T) string) int {
	w := len(header)
	for _, r := range rows {
		w = max(w, len(field(r)))
	}
	return w
}
