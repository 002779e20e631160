// SPDX-License-Identifier: MIT

package iotable

// Dog-leg row and column names of the reference UK national table.
// Adapters for other sources map their own labels onto these.
const (
	TotalSalesRow      = "Total Sales"
	ImportsRow         = "Imports"
	GrossValueAddedRow = "Gross Value Added"
	NetSubsidiesRow    = "Net subsidies"
)

// Final demand category columns.
var FinalDemandColumns = []string{
	"Household Purchase",
	"Government Purchase",
	"Non-profit Purchase",
}

// Export category columns.
var ExportColumns = []string{
	"Exports to EU",
	"Exports outside EU",
	"Exports of services",
}

// AggregationA10 is the high-level SNA/ISIC A*10 sector aggregation
// over section letter codes.
var AggregationA10 = Aggregation{
	{Name: "Agriculture", Codes: []string{"A"}},
	{Name: "Production", Codes: []string{"B", "C", "D", "E"}},
	{Name: "Construction", Codes: []string{"F"}},
	{Name: "Distribution, transport, hotels and restaurants", Codes: []string{"G", "H", "I"}},
	{Name: "Information and communication", Codes: []string{"J"}},
	{Name: "Financial and insurance", Codes: []string{"K"}},
	{Name: "Real estate", Codes: []string{"L"}},
	{Name: "Professional and support activities", Codes: []string{"M", "N"}},
	{Name: "Government, health & education", Codes: []string{"O", "P", "Q"}},
	{Name: "Other services", Codes: []string{"R", "S", "T"}},
}
