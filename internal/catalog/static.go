package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"sigs.k8s.io/yaml"
)

// StaticCatalog an in-memory Lookup backed by chipset and case tables.
// Safe for concurrent readers: the tables are fixed after construction.
type StaticCatalog struct {
	motherboards map[string]MotherboardPhysicalSpec
	cases        map[string]CasePhysicalSpec
	version      string
}

// seedFile on-disk catalog format (json-tagged, loaded via sigs.k8s.io/yaml)
type seedFile struct {
	Motherboards []MotherboardPhysicalSpec `json:"motherboards"`
	Cases        []CasePhysicalSpec        `json:"cases"`
}

// NewStaticCatalog creates a catalog from the built-in chipset and case
// tables.
func NewStaticCatalog() *StaticCatalog {
	return newCatalog(builtinMotherboards, builtinCases)
}

// LoadStaticCatalog reads a YAML seed file and merges it over the built-in
// tables. Seed entries win on id collision.
func LoadStaticCatalog(path string) (*StaticCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}

	mbs := make([]MotherboardPhysicalSpec, 0, len(builtinMotherboards)+len(seed.Motherboards))
	mbs = append(mbs, builtinMotherboards...)
	mbs = append(mbs, seed.Motherboards...)

	cases := make([]CasePhysicalSpec, 0, len(builtinCases)+len(seed.Cases))
	cases = append(cases, builtinCases...)
	cases = append(cases, seed.Cases...)

	return newCatalog(mbs, cases), nil
}

func newCatalog(mbs []MotherboardPhysicalSpec, cases []CasePhysicalSpec) *StaticCatalog {
	c := &StaticCatalog{
		motherboards: make(map[string]MotherboardPhysicalSpec, len(mbs)),
		cases:        make(map[string]CasePhysicalSpec, len(cases)),
	}
	for _, mb := range mbs {
		c.motherboards[normalizeID(mb.ChipsetID)] = mb
	}
	for _, cs := range cases {
		c.cases[normalizeID(cs.CaseTypeID)] = cs
	}
	c.version = c.computeVersion()
	return c
}

// MotherboardSpec implements Lookup.
func (c *StaticCatalog) MotherboardSpec(chipsetID string) (MotherboardPhysicalSpec, bool) {
	if spec, ok := c.motherboards[normalizeID(chipsetID)]; ok {
		return spec, true
	}
	return DefaultMotherboardSpec, false
}

// CaseSpec implements Lookup.
func (c *StaticCatalog) CaseSpec(caseTypeID string) (CasePhysicalSpec, bool) {
	if spec, ok := c.cases[normalizeID(caseTypeID)]; ok {
		return spec, true
	}
	return DefaultCaseSpec, false
}

// Version implements Lookup. The version is a stable hash of the table
// contents, so two catalogs with identical tables share cached results.
func (c *StaticCatalog) Version() string {
	return c.version
}

func (c *StaticCatalog) computeVersion() string {
	mbIDs := make([]string, 0, len(c.motherboards))
	for id := range c.motherboards {
		mbIDs = append(mbIDs, id)
	}
	sort.Strings(mbIDs)

	caseIDs := make([]string, 0, len(c.cases))
	for id := range c.cases {
		caseIDs = append(caseIDs, id)
	}
	sort.Strings(caseIDs)

	h := sha256.New()
	for _, id := range mbIDs {
		entry, _ := json.Marshal(c.motherboards[id])
		h.Write(entry)
	}
	for _, id := range caseIDs {
		entry, _ := json.Marshal(c.cases[id])
		h.Write(entry)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Built-in tables cover the common consumer chipsets and case sizes.
var builtinMotherboards = []MotherboardPhysicalSpec{
	{ChipsetID: "a620", M2Slots: 1, SataConnectors: 4, MemorySlots: 4, ExpansionSlots: 2, PowerConnectors: 6},
	{ChipsetID: "b650", M2Slots: 2, SataConnectors: 4, MemorySlots: 4, ExpansionSlots: 3, PowerConnectors: 8},
	{ChipsetID: "x670", M2Slots: 4, SataConnectors: 6, MemorySlots: 4, ExpansionSlots: 4, PowerConnectors: 10},
	{ChipsetID: "h610", M2Slots: 1, SataConnectors: 4, MemorySlots: 2, ExpansionSlots: 2, PowerConnectors: 6},
	{ChipsetID: "b760", M2Slots: 2, SataConnectors: 4, MemorySlots: 4, ExpansionSlots: 3, PowerConnectors: 8},
	{ChipsetID: "z790", M2Slots: 4, SataConnectors: 8, MemorySlots: 4, ExpansionSlots: 4, PowerConnectors: 10},
}

var builtinCases = []CasePhysicalSpec{
	{CaseTypeID: "mini-itx", FanMounts: 3, MaxGPULength: 280, MaxCoolerHeight: 70, MaxPSULength: 140},
	{CaseTypeID: "micro-atx", FanMounts: 4, MaxGPULength: 310, MaxCoolerHeight: 155, MaxPSULength: 160},
	{CaseTypeID: "mid-tower", FanMounts: 6, MaxGPULength: 360, MaxCoolerHeight: 165, MaxPSULength: 180},
	{CaseTypeID: "full-tower", FanMounts: 9, MaxGPULength: 420, MaxCoolerHeight: 190, MaxPSULength: 220},
}
