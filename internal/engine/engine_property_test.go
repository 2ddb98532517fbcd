// Property-based tests for the compatibility engine. These verify the
// universal guarantees the result contract makes: the score is always a
// bounded integer, evaluation is deterministic for identical snapshots, and
// critical findings always cost score.
package engine

import (
	"testing"

	"rigforge/internal/catalog"
	"rigforge/internal/model"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genSocket() gopter.Gen {
	return gen.OneConstOf("AM4", "AM5", "LGA1200", "LGA1700")
}

func genChipset() gopter.Gen {
	return gen.OneConstOf("a620", "b650", "x670", "h610", "b760", "z790", "xx999")
}

func genStorageInterface() gopter.Gen {
	return gen.OneConstOf("NVMe", "SATA", "SATA3", "SCSI", "")
}

func genTier() gopter.Gen {
	return gen.OneConstOf("entry", "mainstream", "high", "enthusiast", "")
}

// buildConfig assembles a snapshot from generated primitives.
func buildConfig(cpuSocket, mbSocket, chipset, tier, iface string, wattage, nvmeCount, fanCount int) *model.Configuration {
	cfg := &model.Configuration{
		Core: model.CoreComponents{
			CPU:         testCPU(cpuSocket, 105, tier),
			Motherboard: testMotherboard(mbSocket, chipset, "DDR5"),
			Memory:      testMemory("DDR5"),
			GPU:         testGPU(280, 220, tier),
			PSU:         testPSU(float64(wattage), 150),
			Case:        testCase("mid-tower"),
			Cooler:      testCooler(150),
		},
	}
	for i := 0; i < nvmeCount; i++ {
		cfg.Additional.Storage = append(cfg.Additional.Storage, testStorage("gen-ssd", iface))
	}
	for i := 0; i < fanCount; i++ {
		cfg.Additional.Fans = append(cfg.Additional.Fans, &model.Part{ID: "gen-fan", Category: model.CategoryOther, Price: 15})
	}
	return cfg
}

func TestProperty_ScoreIsBoundedAndDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	cat := catalog.NewStaticCatalog()

	properties.Property("score stays within [0,100] for any snapshot", prop.ForAll(
		func(cpuSocket, mbSocket, chipset, tier, iface string, wattage, nvmeCount, fanCount int) bool {
			cfg := buildConfig(cpuSocket, mbSocket, chipset, tier, iface, wattage, nvmeCount, fanCount)
			result, err := Evaluate(cfg, cat)
			if err != nil {
				return false
			}
			return result.Score >= 0 && result.Score <= 100
		},
		genSocket(), genSocket(), genChipset(), genTier(), genStorageInterface(),
		gen.IntRange(100, 1200), gen.IntRange(0, 8), gen.IntRange(0, 10),
	))

	properties.Property("identical snapshots evaluate identically", prop.ForAll(
		func(cpuSocket, mbSocket, chipset, tier, iface string, wattage, nvmeCount, fanCount int) bool {
			cfg := buildConfig(cpuSocket, mbSocket, chipset, tier, iface, wattage, nvmeCount, fanCount)
			first, err := Evaluate(cfg, cat)
			if err != nil {
				return false
			}
			second, err := Evaluate(cfg, cat)
			if err != nil {
				return false
			}
			return first.Score == second.Score &&
				first.IsCompatible == second.IsCompatible &&
				first.IsValid == second.IsValid &&
				len(first.Issues) == len(second.Issues) &&
				len(first.Violations) == len(second.Violations)
		},
		genSocket(), genSocket(), genChipset(), genTier(), genStorageInterface(),
		gen.IntRange(100, 1200), gen.IntRange(0, 8), gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}

func TestProperty_CriticalFindingsCostScore(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	cat := catalog.NewStaticCatalog()

	// Breaking the socket match on an otherwise unchanged snapshot must
	// strictly decrease the score, unless it is already at the floor.
	properties.Property("socket mismatch strictly decreases the score", prop.ForAll(
		func(socket, chipset, tier, iface string, wattage, nvmeCount, fanCount int) bool {
			matched := buildConfig(socket, socket, chipset, tier, iface, wattage, nvmeCount, fanCount)
			base, err := Evaluate(matched, cat)
			if err != nil {
				return false
			}

			otherSocket := "AM5"
			if socket == "AM5" {
				otherSocket = "LGA1700"
			}
			broken := buildConfig(otherSocket, socket, chipset, tier, iface, wattage, nvmeCount, fanCount)
			worse, err := Evaluate(broken, cat)
			if err != nil {
				return false
			}

			if worse.IsCompatible {
				// A socket mismatch is always critical.
				return false
			}
			return worse.Score < base.Score || worse.Score == 0
		},
		genSocket(), genChipset(), genTier(), genStorageInterface(),
		gen.IntRange(100, 1200), gen.IntRange(0, 8), gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}
