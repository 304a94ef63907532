package insights

import "qsbench/internal/models"

func str(s string) *string { return &s }

func year(n int) *int { return &n }

// arch builds one reference row. Codec capability flags follow the
// Quick Sync feature matrix per iGPU generation.
func arch(pattern, name, codename string, releaseYear int, quarter string, sortOrder int,
	h264, hevc8, hevc10, vp9, av1 bool, igpu, process string) models.Architecture {
	a := models.Architecture{
		Pattern:         pattern,
		Architecture:    name,
		Codename:        str(codename),
		ReleaseYear:     year(releaseYear),
		SortOrder:       sortOrder,
		H264Encode:      h264,
		HEVC8BitEncode:  hevc8,
		HEVC10BitEncode: hevc10,
		VP9Encode:       vp9,
		AV1Encode:       av1,
		Vendor:          "intel",
	}

	if quarter != "" {
		a.ReleaseQuarter = str(quarter)
	}

	if igpu != "" {
		a.IGPUName = str(igpu)
	}

	if process != "" {
		a.ProcessNm = str(process)
	}

	return a
}

// Architectures returns the curated microarchitecture reference table.
// Patterns mirror the classifier's rule table; sort order runs roughly
// chronological with mobile variants slotted between desktop
// generations.
func Architectures() []models.Architecture {
	return []models.Architecture{
		arch(`i[3579]-2\d{3}`, "Sandy Bridge", "SNB", 2011, "Q1", 20,
			true, false, false, false, false, "HD Graphics 3000", "32"),
		arch(`i[3579]-3\d{3}`, "Ivy Bridge", "IVB", 2012, "Q2", 30,
			true, false, false, false, false, "HD Graphics 4000", "22"),
		arch(`i[3579]-4\d{3}`, "Haswell", "HSW", 2013, "Q2", 40,
			true, false, false, false, false, "HD Graphics 4600", "22"),
		arch(`i[3579]-5\d{3}`, "Broadwell", "BDW", 2014, "Q4", 50,
			true, false, false, false, false, "HD Graphics 5500", "14"),
		arch(`Xeon.*E3-1[23]\d{2}`, "Xeon E3", "Various", 2015, "", 55,
			true, false, false, false, false, "", ""),
		arch(`i[3579]-6\d{3}`, "Skylake", "SKL", 2015, "Q3", 60,
			true, false, false, false, false, "HD Graphics 530", "14"),
		arch(`Celeron.*G[4567]\d{3}`, "Celeron", "Various", 2017, "", 65,
			true, true, false, false, false, "", ""),
		arch(`i[3579]-7\d{3}`, "Kaby Lake", "KBL", 2017, "Q1", 70,
			true, true, false, false, false, "HD Graphics 630", "14"),
		arch(`i[3579]-8\d{3}`, "Coffee Lake", "CFL", 2018, "Q4", 80,
			true, true, false, false, false, "UHD Graphics 630", "14"),
		arch(`Pentium.*G[567]\d{3}`, "Pentium Gold", "CFL", 2018, "", 82,
			true, true, false, false, false, "UHD Graphics 610", "14"),
		arch(`Xeon.*E-2[123]\d{2}`, "Xeon E", "CFL", 2018, "", 85,
			true, true, false, false, false, "UHD Graphics P630", "14"),
		arch(`i[3579]-9\d{3}`, "Coffee Lake Refresh", "CFL-R", 2019, "Q2", 90,
			true, true, false, false, false, "UHD Graphics 630", "14"),
		arch(`i[3579]-10\d{2}G`, "Ice Lake", "ICL", 2019, "Q3", 95,
			true, true, true, false, false, "Iris Plus Graphics", "10"),
		arch(`i[3579]-10\d{3}`, "Comet Lake", "CML", 2020, "Q2", 100,
			true, true, false, false, false, "UHD Graphics 630", "14"),
		arch(`i[3579]-11\d{2}G`, "Tiger Lake", "TGL", 2020, "Q3", 105,
			true, true, true, true, false, "Iris Xe Graphics", "10"),
		arch(`i[3579]-11\d{3}`, "Rocket Lake", "RKL", 2021, "Q1", 110,
			true, true, true, true, false, "UHD Graphics 750", "14"),
		arch(`i[3579]-12\d{3}`, "Alder Lake", "ADL", 2021, "Q4", 120,
			true, true, true, true, false, "UHD Graphics 770", "10"),
		arch(`N[12]\d{2}`, "Alder Lake-N", "ADL-N", 2023, "Q1", 125,
			true, true, true, true, false, "UHD Graphics", "10"),
		arch(`i[3579]-13\d{3}`, "Raptor Lake", "RPL", 2022, "Q4", 130,
			true, true, true, true, false, "UHD Graphics 770", "10"),
		arch(`i[3579]-14\d{3}`, "Raptor Lake Refresh", "RPL-R", 2023, "Q4", 140,
			true, true, true, true, false, "UHD Graphics 770", "10"),
		arch(`Ultra [3579] 1\d{2}`, "Meteor Lake", "MTL", 2023, "Q4", 150,
			true, true, true, true, true, "Arc Graphics", "7"),
		arch(`Ultra [3579] 2\d{2}[KFS]`, "Arrow Lake", "ARL", 2024, "Q4", 200,
			true, true, true, true, true, "Arc Graphics", "3"),
		arch(`Ultra [3579] 2\d{2}[VU]`, "Lunar Lake", "LNL", 2024, "Q3", 210,
			true, true, true, true, true, "Arc Graphics 140V", "3"),
	}
}
