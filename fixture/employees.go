// Copyright 2025 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fixture

import (
	"strconv"
	"strings"
)

// Employee is one row of the demo table.
type Employee struct {
	Name      string
	Position  string
	Office    string
	Age       int
	StartDate string
	Salary    string
}

// Cells returns the row's column values in display order.
func (e Employee) Cells() []string {
	return []string{e.Name, e.Position, e.Office, strconv.Itoa(e.Age), e.StartDate, e.Salary}
}

// Columns are the demo table's header labels.
var Columns = []string{"Name", "Position", "Office", "Age", "Start date", "Salary"}

// Employees is the demo table's data set: 24 rows, 5 of them in New York.
var Employees = []Employee{
	{"Airi Satou", "Accountant", "Tokyo", 33, "2008/11/28", "$162,700"},
	{"Angelica Ramos", "Chief Executive Officer (CEO)", "London", 47, "2009/10/09", "$1,200,000"},
	{"Ashton Cox", "Junior Technical Author", "San Francisco", 66, "2009/01/12", "$86,000"},
	{"Bradley Greer", "Software Engineer", "London", 41, "2012/10/13", "$132,000"},
	{"Brenden Wagner", "Software Engineer", "San Francisco", 28, "2011/06/07", "$206,850"},
	{"Brielle Williamson", "Integration Specialist", "New York", 61, "2012/12/02", "$372,000"},
	{"Bruno Nash", "Software Engineer", "London", 38, "2011/05/03", "$163,500"},
	{"Caesar Vance", "Pre-Sales Support", "New York", 21, "2011/12/12", "$106,450"},
	{"Cara Stevens", "Sales Assistant", "New York", 46, "2011/12/06", "$145,600"},
	{"Cedric Kelly", "Senior Javascript Developer", "Edinburgh", 22, "2012/03/29", "$433,060"},
	{"Charde Marshall", "Regional Director", "San Francisco", 36, "2008/10/16", "$470,600"},
	{"Colleen Hurst", "Javascript Developer", "San Francisco", 39, "2009/09/15", "$205,500"},
	{"Dai Rios", "Personnel Lead", "Edinburgh", 35, "2012/09/26", "$217,500"},
	{"Donna Snider", "Customer Support", "New York", 27, "2011/01/25", "$112,000"},
	{"Doris Wilder", "Sales Assistant", "Sydney", 23, "2010/09/20", "$85,600"},
	{"Finn Camacho", "Support Engineer", "San Francisco", 47, "2009/07/07", "$87,500"},
	{"Fiona Green", "Chief Operating Officer (COO)", "San Francisco", 48, "2010/03/11", "$850,000"},
	{"Garrett Winters", "Accountant", "Tokyo", 63, "2011/07/25", "$170,750"},
	{"Gavin Cortez", "Team Leader", "San Francisco", 22, "2008/10/26", "$235,500"},
	{"Gavin Joyce", "Developer", "Edinburgh", 42, "2010/12/22", "$92,575"},
	{"Gloria Little", "Systems Administrator", "New York", 59, "2009/04/10", "$237,500"},
	{"Haley Kennedy", "Senior Marketing Designer", "London", 43, "2012/12/18", "$313,500"},
	{"Hermione Butler", "Regional Director", "London", 47, "2011/03/21", "$356,250"},
	{"Herrod Chandler", "Sales Assistant", "San Francisco", 59, "2012/08/06", "$137,500"},
}

// Matching returns the employees a search for query keeps. Like the page's
// script, every whitespace-separated word of the query must occur,
// case-insensitively, somewhere in the row.
func Matching(employees []Employee, query string) []Employee {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return employees
	}
	var matched []Employee
	for _, e := range employees {
		row := strings.ToLower(strings.Join(e.Cells(), " "))
		all := true
		for _, w := range words {
			if !strings.Contains(row, w) {
				all = false
				break
			}
		}
		if all {
			matched = append(matched, e)
		}
	}
	return matched
}

func rows(employees []Employee) [][]string {
	rows := make([][]string, len(employees))
	for i, e := range employees {
		rows[i] = e.Cells()
	}
	return rows
}
