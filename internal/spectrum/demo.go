package spectrum

import "miner-core/damage"

// Demo returns the illustrative five-bin spectrum shipped with the tool.
func Demo() []damage.LoadCase {
	return []damage.LoadCase{
		{StressAmplitude: 150, Cycles: 100000},
		{StressAmplitude: 200, Cycles: 5000},
		{StressAmplitude: 250, Cycles: 2000},
		{StressAmplitude: 300, Cycles: 500},
		{StressAmplitude: 120, Cycles: 500000},
	}
}
