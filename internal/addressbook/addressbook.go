package addressbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pokt-network/pocketknife/internal/types"
)

// ClassifiedAddresses maps each category to its ordered, per-category-unique
// address list. This is the only input structure the treasury engine accepts.
type ClassifiedAddresses map[types.Category][]string

// treasuryFile mirrors the on-disk JSON layout. The keys match the original
// treasury address files (plural, snake_case).
type treasuryFile struct {
	Liquid          []string `json:"liquid"`
	AppStakes       []string `json:"app_stakes"`
	NodeStakes      []string `json:"node_stakes"`
	ValidatorStakes []string `json:"validator_stakes"`
	DelegatorStakes []string `json:"delegator_stakes"`
}

func (f *treasuryFile) addresses(category types.Category) []string {
	switch category {
	case types.CategoryLiquid:
		return f.Liquid
	case types.CategoryAppStake:
		return f.AppStakes
	case types.CategoryNodeStake:
		return f.NodeStakes
	case types.CategoryValidatorStake:
		return f.ValidatorStakes
	case types.CategoryDelegatorStake:
		return f.DelegatorStakes
	default:
		return nil
	}
}

// Load reads a treasury JSON file into a ClassifiedAddresses structure.
// Addresses are deduplicated within each category preserving first-seen
// order; empty or absent categories are skipped. A structurally invalid file
// is the single fatal error class of a treasury run.
func Load(path string) (ClassifiedAddresses, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read treasury file %s: %w", path, err)
	}

	return parseJSON(path, data)
}

// LoadCategory reads addresses for a single category from either a treasury
// JSON file (extracting that category's array) or a plain text file with one
// address per line.
func LoadCategory(path string, category types.Category) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read address file %s: %w", path, err)
	}

	if looksLikeJSON(data) {
		classified, err := parseJSON(path, data)
		if err != nil {
			return nil, err
		}
		return classified[category], nil
	}

	var addresses []string
	for _, line := range strings.Split(string(data), "\n") {
		if addr := strings.TrimSpace(line); addr != "" {
			addresses = append(addresses, addr)
		}
	}
	return dedupe(addresses), nil
}

func parseJSON(path string, data []byte) (ClassifiedAddresses, error) {
	var file treasuryFile

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("invalid treasury file %s: %w", path, err)
	}

	classified := make(ClassifiedAddresses)
	for _, category := range types.Categories() {
		addresses := dedupe(file.addresses(category))
		if len(addresses) > 0 {
			classified[category] = addresses
		}
	}
	return classified, nil
}

func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func dedupe(addresses []string) []string {
	seen := make(map[string]struct{}, len(addresses))
	result := make([]string, 0, len(addresses))

	for _, addr := range addresses {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		result = append(result, addr)
	}
	return result
}
