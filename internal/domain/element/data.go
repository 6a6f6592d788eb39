package element

// builtinElements is the built-in periodic table.  Electronegativity values
// are on the Pauling scale; atomic weights are the IUPAC standard values
// rounded to three decimals.  OxidationStates lists only the common states the
// oxidation-state estimator may assign heuristically.
var builtinElements = []Element{
	{Symbol: "H", AtomicNumber: 1, AtomicWeight: 1.008, Electronegativity: 2.20, OxidationStates: []int{-1, 1}},
	{Symbol: "He", AtomicNumber: 2, AtomicWeight: 4.003},
	{Symbol: "Li", AtomicNumber: 3, AtomicWeight: 6.941, Electronegativity: 0.98, OxidationStates: []int{1}, Metal: true},
	{Symbol: "Be", AtomicNumber: 4, AtomicWeight: 9.012, Electronegativity: 1.57, OxidationStates: []int{2}, Metal: true},
	{Symbol: "B", AtomicNumber: 5, AtomicWeight: 10.811, Electronegativity: 2.04, OxidationStates: []int{3}},
	{Symbol: "C", AtomicNumber: 6, AtomicWeight: 12.011, Electronegativity: 2.55, OxidationStates: []int{-4, -3, -2, -1, 0, 1, 2, 3, 4}},
	{Symbol: "N", AtomicNumber: 7, AtomicWeight: 14.007, Electronegativity: 3.04, OxidationStates: []int{-3, -2, -1, 0, 1, 2, 3, 4, 5}},
	{Symbol: "O", AtomicNumber: 8, AtomicWeight: 15.999, Electronegativity: 3.44, OxidationStates: []int{-2, -1, 0, 1, 2}},
	{Symbol: "F", AtomicNumber: 9, AtomicWeight: 18.998, Electronegativity: 3.98, OxidationStates: []int{-1}},
	{Symbol: "Ne", AtomicNumber: 10, AtomicWeight: 20.180},
	{Symbol: "Na", AtomicNumber: 11, AtomicWeight: 22.990, Electronegativity: 0.93, OxidationStates: []int{1}, Metal: true},
	{Symbol: "Mg", AtomicNumber: 12, AtomicWeight: 24.305, Electronegativity: 1.31, OxidationStates: []int{2}, Metal: true},
	{Symbol: "Al", AtomicNumber: 13, AtomicWeight: 26.982, Electronegativity: 1.61, OxidationStates: []int{3}, Metal: true},
	{Symbol: "Si", AtomicNumber: 14, AtomicWeight: 28.086, Electronegativity: 1.90, OxidationStates: []int{-4, 4}},
	{Symbol: "P", AtomicNumber: 15, AtomicWeight: 30.974, Electronegativity: 2.19, OxidationStates: []int{-3, 3, 5}},
	{Symbol: "S", AtomicNumber: 16, AtomicWeight: 32.065, Electronegativity: 2.58, OxidationStates: []int{-2, 0, 2, 4, 6}},
	{Symbol: "Cl", AtomicNumber: 17, AtomicWeight: 35.453, Electronegativity: 3.16, OxidationStates: []int{-1, 0, 1, 3, 5, 7}},
	{Symbol: "Ar", AtomicNumber: 18, AtomicWeight: 39.948},
	{Symbol: "K", AtomicNumber: 19, AtomicWeight: 39.098, Electronegativity: 0.82, OxidationStates: []int{1}, Metal: true},
	{Symbol: "Ca", AtomicNumber: 20, AtomicWeight: 40.078, Electronegativity: 1.00, OxidationStates: []int{2}, Metal: true},
	{Symbol: "Sc", AtomicNumber: 21, AtomicWeight: 44.956, Electronegativity: 1.36, Metal: true},
	{Symbol: "Ti", AtomicNumber: 22, AtomicWeight: 47.867, Electronegativity: 1.54, OxidationStates: []int{2, 3, 4}, Metal: true},
	{Symbol: "V", AtomicNumber: 23, AtomicWeight: 50.942, Electronegativity: 1.63, OxidationStates: []int{2, 3, 4, 5}, Metal: true},
	{Symbol: "Cr", AtomicNumber: 24, AtomicWeight: 51.996, Electronegativity: 1.66, OxidationStates: []int{2, 3, 6}, Metal: true},
	{Symbol: "Mn", AtomicNumber: 25, AtomicWeight: 54.938, Electronegativity: 1.55, OxidationStates: []int{2, 3, 4, 6, 7}, Metal: true},
	{Symbol: "Fe", AtomicNumber: 26, AtomicWeight: 55.845, Electronegativity: 1.83, OxidationStates: []int{2, 3}, Metal: true},
	{Symbol: "Co", AtomicNumber: 27, AtomicWeight: 58.933, Electronegativity: 1.88, OxidationStates: []int{2, 3}, Metal: true},
	{Symbol: "Ni", AtomicNumber: 28, AtomicWeight: 58.693, Electronegativity: 1.91, OxidationStates: []int{2, 3}, Metal: true},
	{Symbol: "Cu", AtomicNumber: 29, AtomicWeight: 63.546, Electronegativity: 1.90, OxidationStates: []int{1, 2}, Metal: true},
	{Symbol: "Zn", AtomicNumber: 30, AtomicWeight: 65.380, Electronegativity: 1.65, OxidationStates: []int{2}, Metal: true},
	{Symbol: "Ga", AtomicNumber: 31, AtomicWeight: 69.723, Electronegativity: 1.81, OxidationStates: []int{3}, Metal: true},
	{Symbol: "Ge", AtomicNumber: 32, AtomicWeight: 72.640, Electronegativity: 2.01, OxidationStates: []int{-4, 2, 4}},
	{Symbol: "As", AtomicNumber: 33, AtomicWeight: 74.922, Electronegativity: 2.18, OxidationStates: []int{-3, 3, 5}},
	{Symbol: "Se", AtomicNumber: 34, AtomicWeight: 78.960, Electronegativity: 2.55, OxidationStates: []int{-2, 0, 2, 4, 6}},
	{Symbol: "Br", AtomicNumber: 35, AtomicWeight: 79.904, Electronegativity: 2.96, OxidationStates: []int{-1, 0, 1, 3, 5, 7}},
	{Symbol: "Kr", AtomicNumber: 36, AtomicWeight: 83.798},
	{Symbol: "Rb", AtomicNumber: 37, AtomicWeight: 85.468, Electronegativity: 0.82, OxidationStates: []int{1}, Metal: true},
	{Symbol: "Sr", AtomicNumber: 38, AtomicWeight: 87.620, Electronegativity: 0.95, OxidationStates: []int{2}, Metal: true},
	{Symbol: "Y", AtomicNumber: 39, AtomicWeight: 88.906, Electronegativity: 1.22, Metal: true},
	{Symbol: "Zr", AtomicNumber: 40, AtomicWeight: 91.224, Electronegativity: 1.33, Metal: true},
	{Symbol: "Nb", AtomicNumber: 41, AtomicWeight: 92.906, Electronegativity: 1.60, Metal: true},
	{Symbol: "Mo", AtomicNumber: 42, AtomicWeight: 95.960, Electronegativity: 2.16, OxidationStates: []int{2, 3, 4, 5, 6}, Metal: true},
	{Symbol: "Tc", AtomicNumber: 43, AtomicWeight: 98.000, Electronegativity: 1.90, Metal: true},
	{Symbol: "Ru", AtomicNumber: 44, AtomicWeight: 101.070, Electronegativity: 2.20, Metal: true},
	{Symbol: "Rh", AtomicNumber: 45, AtomicWeight: 102.906, Electronegativity: 2.28, Metal: true},
	{Symbol: "Pd", AtomicNumber: 46, AtomicWeight: 106.420, Electronegativity: 2.20, OxidationStates: []int{2, 4}, Metal: true},
	{Symbol: "Ag", AtomicNumber: 47, AtomicWeight: 107.868, Electronegativity: 1.93, OxidationStates: []int{1}, Metal: true},
	{Symbol: "Cd", AtomicNumber: 48, AtomicWeight: 112.411, Electronegativity: 1.69, OxidationStates: []int{2}, Metal: true},
	{Symbol: "In", AtomicNumber: 49, AtomicWeight: 114.818, Electronegativity: 1.78, OxidationStates: []int{3}, Metal: true},
	{Symbol: "Sn", AtomicNumber: 50, AtomicWeight: 118.710, Electronegativity: 1.96, Metal: true},
	{Symbol: "Sb", AtomicNumber: 51, AtomicWeight: 121.760, Electronegativity: 2.05},
	{Symbol: "Te", AtomicNumber: 52, AtomicWeight: 127.600, Electronegativity: 2.10},
	{Symbol: "I", AtomicNumber: 53, AtomicWeight: 126.904, Electronegativity: 2.66, OxidationStates: []int{-1, 0, 1, 3, 5, 7}},
	{Symbol: "Xe", AtomicNumber: 54, AtomicWeight: 131.293},
	{Symbol: "Cs", AtomicNumber: 55, AtomicWeight: 132.905, Electronegativity: 0.79, OxidationStates: []int{1}, Metal: true},
	{Symbol: "Ba", AtomicNumber: 56, AtomicWeight: 137.327, Electronegativity: 0.89, OxidationStates: []int{2}, Metal: true},
	{Symbol: "La", AtomicNumber: 57, AtomicWeight: 138.905, Electronegativity: 1.10, Metal: true},
	{Symbol: "Ce", AtomicNumber: 58, AtomicWeight: 140.116, Electronegativity: 1.12, OxidationStates: []int{3, 4}, Metal: true},
	{Symbol: "Pr", AtomicNumber: 59, AtomicWeight: 140.908, Electronegativity: 1.13, Metal: true},
	{Symbol: "Nd", AtomicNumber: 60, AtomicWeight: 144.242, Electronegativity: 1.14, Metal: true},
	{Symbol: "Pm", AtomicNumber: 61, AtomicWeight: 145.000, Electronegativity: 1.13, Metal: true},
	{Symbol: "Sm", AtomicNumber: 62, AtomicWeight: 150.360, Electronegativity: 1.17, Metal: true},
	{Symbol: "Eu", AtomicNumber: 63, AtomicWeight: 151.964, Electronegativity: 1.20, Metal: true},
	{Symbol: "Gd", AtomicNumber: 64, AtomicWeight: 157.250, Electronegativity: 1.20, Metal: true},
	{Symbol: "Tb", AtomicNumber: 65, AtomicWeight: 158.925, Electronegativity: 1.10, Metal: true},
	{Symbol: "Dy", AtomicNumber: 66, AtomicWeight: 162.500, Electronegativity: 1.22, Metal: true},
	{Symbol: "Ho", AtomicNumber: 67, AtomicWeight: 164.930, Electronegativity: 1.23, Metal: true},
	{Symbol: "Er", AtomicNumber: 68, AtomicWeight: 167.259, Electronegativity: 1.24, Metal: true},
	{Symbol: "Tm", AtomicNumber: 69, AtomicWeight: 168.934, Electronegativity: 1.25, Metal: true},
	{Symbol: "Yb", AtomicNumber: 70, AtomicWeight: 173.054, Electronegativity: 1.10, Metal: true},
	{Symbol: "Lu", AtomicNumber: 71, AtomicWeight: 174.967, Electronegativity: 1.27, Metal: true},
	{Symbol: "Hf", AtomicNumber: 72, AtomicWeight: 178.490, Electronegativity: 1.30, Metal: true},
	{Symbol: "Ta", AtomicNumber: 73, AtomicWeight: 180.948, Electronegativity: 1.50, Metal: true},
	{Symbol: "W", AtomicNumber: 74, AtomicWeight: 183.840, Electronegativity: 2.36, OxidationStates: []int{2, 3, 4, 5, 6}, Metal: true},
	{Symbol: "Re", AtomicNumber: 75, AtomicWeight: 186.207, Electronegativity: 1.90, Metal: true},
	{Symbol: "Os", AtomicNumber: 76, AtomicWeight: 190.230, Electronegativity: 2.20, Metal: true},
	{Symbol: "Ir", AtomicNumber: 77, AtomicWeight: 192.217, Electronegativity: 2.20, Metal: true},
	{Symbol: "Pt", AtomicNumber: 78, AtomicWeight: 195.084, Electronegativity: 2.28, OxidationStates: []int{2, 4}, Metal: true},
	{Symbol: "Au", AtomicNumber: 79, AtomicWeight: 196.967, Electronegativity: 2.54, OxidationStates: []int{1, 3}, Metal: true},
	{Symbol: "Hg", AtomicNumber: 80, AtomicWeight: 200.590, Electronegativity: 2.00, OxidationStates: []int{1, 2}, Metal: true},
	{Symbol: "Tl", AtomicNumber: 81, AtomicWeight: 204.383, Electronegativity: 1.62, Metal: true},
	{Symbol: "Pb", AtomicNumber: 82, AtomicWeight: 207.200, Electronegativity: 2.33, OxidationStates: []int{2, 4}, Metal: true},
	{Symbol: "Bi", AtomicNumber: 83, AtomicWeight: 208.980, Electronegativity: 2.02, Metal: true},
	{Symbol: "Po", AtomicNumber: 84, AtomicWeight: 209.000, Electronegativity: 2.00, Metal: true},
	{Symbol: "At", AtomicNumber: 85, AtomicWeight: 210.000, Electronegativity: 2.20},
	{Symbol: "Rn", AtomicNumber: 86, AtomicWeight: 222.000},
	{Symbol: "Fr", AtomicNumber: 87, AtomicWeight: 223.000, Electronegativity: 0.70, OxidationStates: []int{1}, Metal: true},
	{Symbol: "Ra", AtomicNumber: 88, AtomicWeight: 226.000, Electronegativity: 0.90, OxidationStates: []int{2}, Metal: true},
	{Symbol: "Ac", AtomicNumber: 89, AtomicWeight: 227.000, Electronegativity: 1.10, Metal: true},
	{Symbol: "Th", AtomicNumber: 90, AtomicWeight: 232.038, Electronegativity: 1.30, Metal: true},
	{Symbol: "Pa", AtomicNumber: 91, AtomicWeight: 231.036, Electronegativity: 1.50, Metal: true},
	{Symbol: "U", AtomicNumber: 92, AtomicWeight: 238.029, Electronegativity: 1.38, Metal: true},
}
