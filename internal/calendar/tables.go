package calendar

import "time"

// Built-in public holiday tables for the supported regions, covering the
// 2025-2026 planning horizon. Loaded once at process start; additional rows
// can be layered in from configuration via Engine construction, never by
// mutating these.

func init() {
	builtin = map[Region]*Table{
		RegionABMY: NewTable(RegionABMY, abmyHolidays),
		RegionABSG: NewTable(RegionABSG, absgHolidays),
		RegionABVN: NewTable(RegionABVN, abvnHolidays),
	}
}

var builtin map[Region]*Table

func day(year, month, dom int) Day {
	return NewDay(year, time.Month(month), dom)
}

var abmyHolidays = []Holiday{
	{Date: day(2025, 1, 1), Name: "New Year's Day"},
	{Date: day(2025, 1, 29), Name: "Chinese New Year"},
	{Date: day(2025, 1, 30), Name: "Chinese New Year (Second Day)"},
	{Date: day(2025, 2, 3), Name: "Federal Territory Day (observed)"},
	{Date: day(2025, 3, 31), Name: "Hari Raya Aidilfitri"},
	{Date: day(2025, 4, 1), Name: "Hari Raya Aidilfitri (Second Day)"},
	{Date: day(2025, 5, 1), Name: "Labour Day"},
	{Date: day(2025, 5, 12), Name: "Wesak Day"},
	{Date: day(2025, 6, 2), Name: "Agong's Birthday"},
	{Date: day(2025, 6, 27), Name: "Awal Muharram"},
	{Date: day(2025, 9, 1), Name: "Merdeka Day (observed)"},
	{Date: day(2025, 9, 5), Name: "Prophet Muhammad's Birthday"},
	{Date: day(2025, 9, 16), Name: "Malaysia Day"},
	{Date: day(2025, 10, 20), Name: "Deepavali"},
	{Date: day(2025, 12, 25), Name: "Christmas Day"},

	{Date: day(2026, 1, 1), Name: "New Year's Day"},
	{Date: day(2026, 2, 2), Name: "Federal Territory Day (observed)"},
	{Date: day(2026, 2, 17), Name: "Chinese New Year"},
	{Date: day(2026, 2, 18), Name: "Chinese New Year (Second Day)"},
	{Date: day(2026, 3, 21), Name: "Hari Raya Aidilfitri"},
	{Date: day(2026, 3, 23), Name: "Hari Raya Aidilfitri (observed)"},
	{Date: day(2026, 5, 1), Name: "Labour Day"},
	{Date: day(2026, 5, 27), Name: "Hari Raya Haji"},
	{Date: day(2026, 6, 1), Name: "Agong's Birthday"},
	{Date: day(2026, 6, 16), Name: "Awal Muharram"},
	{Date: day(2026, 8, 25), Name: "Prophet Muhammad's Birthday"},
	{Date: day(2026, 8, 31), Name: "Merdeka Day"},
	{Date: day(2026, 9, 16), Name: "Malaysia Day"},
	{Date: day(2026, 11, 9), Name: "Deepavali (observed)"},
	{Date: day(2026, 12, 25), Name: "Christmas Day"},
}

var absgHolidays = []Holiday{
	{Date: day(2025, 1, 1), Name: "New Year's Day"},
	{Date: day(2025, 1, 29), Name: "Chinese New Year"},
	{Date: day(2025, 1, 30), Name: "Chinese New Year (Second Day)"},
	{Date: day(2025, 3, 31), Name: "Hari Raya Puasa"},
	{Date: day(2025, 4, 18), Name: "Good Friday"},
	{Date: day(2025, 5, 1), Name: "Labour Day"},
	{Date: day(2025, 5, 12), Name: "Vesak Day"},
	{Date: day(2025, 6, 9), Name: "Hari Raya Haji (observed)"},
	{Date: day(2025, 8, 11), Name: "National Day (observed)"},
	{Date: day(2025, 10, 20), Name: "Deepavali"},
	{Date: day(2025, 12, 25), Name: "Christmas Day"},

	{Date: day(2026, 1, 1), Name: "New Year's Day"},
	{Date: day(2026, 2, 17), Name: "Chinese New Year"},
	{Date: day(2026, 2, 18), Name: "Chinese New Year (Second Day)"},
	{Date: day(2026, 3, 21), Name: "Hari Raya Puasa"},
	{Date: day(2026, 4, 3), Name: "Good Friday"},
	{Date: day(2026, 5, 1), Name: "Labour Day"},
	{Date: day(2026, 5, 27), Name: "Hari Raya Haji"},
	{Date: day(2026, 6, 1), Name: "Vesak Day (observed)"},
	{Date: day(2026, 8, 10), Name: "National Day (observed)"},
	{Date: day(2026, 11, 9), Name: "Deepavali (observed)"},
	{Date: day(2026, 12, 25), Name: "Christmas Day"},
}

var abvnHolidays = []Holiday{
	{Date: day(2025, 1, 1), Name: "New Year's Day"},
	{Date: day(2025, 1, 27), Name: "Tet Holiday"},
	{Date: day(2025, 1, 28), Name: "Tet Holiday"},
	{Date: day(2025, 1, 29), Name: "Lunar New Year"},
	{Date: day(2025, 1, 30), Name: "Tet Holiday"},
	{Date: day(2025, 1, 31), Name: "Tet Holiday"},
	{Date: day(2025, 4, 7), Name: "Hung Kings Commemoration"},
	{Date: day(2025, 4, 30), Name: "Reunification Day"},
	{Date: day(2025, 5, 1), Name: "Labour Day"},
	{Date: day(2025, 9, 1), Name: "National Day Holiday"},
	{Date: day(2025, 9, 2), Name: "National Day"},

	{Date: day(2026, 1, 1), Name: "New Year's Day"},
	{Date: day(2026, 2, 16), Name: "Tet Holiday"},
	{Date: day(2026, 2, 17), Name: "Lunar New Year"},
	{Date: day(2026, 2, 18), Name: "Tet Holiday"},
	{Date: day(2026, 2, 19), Name: "Tet Holiday"},
	{Date: day(2026, 2, 20), Name: "Tet Holiday"},
	{Date: day(2026, 4, 27), Name: "Hung Kings Commemoration (observed)"},
	{Date: day(2026, 4, 30), Name: "Reunification Day"},
	{Date: day(2026, 5, 1), Name: "Labour Day"},
	{Date: day(2026, 9, 2), Name: "National Day"},
	{Date: day(2026, 9, 3), Name: "National Day Holiday"},
}
