package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"sharedprint/core/config"
	"sharedprint/core/storage"
	"sharedprint/feature/circulation"
	"sharedprint/feature/holdings"

	jsoniter "github.com/json-iterator/go"
)

// debug_items prints the verdict of every item in a MARC export.
//
//	go run ./cmd/debug_items koha.mrc [identifier]
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_items INPUT [IDENTIFIER]")
	}
	input := os.Args[1]
	var only string
	if len(os.Args) > 2 {
		only = os.Args[2]
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	var client storage.Client
	if storage.IsRemote(input) {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			log.Fatal(err)
		}
	}

	ctx := context.Background()
	src, err := holdings.OpenMARC(ctx, client, input, cfg.Catalog)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	labels := make(map[string]int)
	unknown := make(map[string]int)
	records, items, valid := 0, 0, 0

	for {
		bib, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		records++

		if only != "" && bib.Identifier != only {
			for _, item := range bib.Items {
				items++
				if circulation.IsValid(item) {
					valid++
				}
			}
			continue
		}

		fmt.Printf("=== %d: %q (id=%s, %d items) ===\n", bib.Position, bib.Title, bib.Identifier, len(bib.Items))
		for i, item := range bib.Items {
			v := circulation.Classify(item)
			items++
			if v.Valid {
				valid++
			}
			for _, l := range v.Labels {
				labels[l]++
			}
			for _, u := range v.Unknown {
				unknown[u.String()]++
			}
			loc, _ := item.Get(circulation.Location)
			typ, _ := item.Get(circulation.ItemType)
			fmt.Printf("  item %d: valid=%v location=%s type=%s status=[%s]\n",
				i+1, v.Valid, loc, typ, strings.Join(v.Labels, ", "))
		}
	}

	fmt.Printf("\nRecords: %d\nTotal items: %d | Items included: %d\n", records, items, valid)

	if len(unknown) > 0 {
		codes := make([]string, 0, len(unknown))
		for c := range unknown {
			codes = append(codes, c)
		}
		sort.Strings(codes)
		fmt.Println("Unknown codes:")
		for _, c := range codes {
			fmt.Printf("  %s: %d\n", c, unknown[c])
		}
	}

	output := map[string]interface{}{
		"records":       records,
		"items":         items,
		"valid_items":   valid,
		"status_counts": labels,
		"unknown_codes": unknown,
	}
	data, _ := jsoniter.ConfigFastest.MarshalIndent(output, "", "  ")
	os.WriteFile("debug_items.json", data, 0644)

	fmt.Println("\nDebug complete. Check debug_items.json for details.")
}
