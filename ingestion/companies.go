package ingestion

import (
	"fmt"

	"github.com/talentfold/ingest/core"
)

// NormalizeCompanies builds company rows from raw rows.
func NormalizeCompanies(rows []map[string]string) []core.Company {
	companies := make([]core.Company, 0, len(rows))
	for i, row := range rows {
		company := core.Company{
			CompanyID:           companyIDFields.resolve(row),
			CompanyName:         companyNameFields.resolve(row),
			Industry:            industryFields.resolve(row),
			HeadquartersCity:    hqCityFields.resolve(row),
			HeadquartersCountry: hqCountryFields.resolve(row),
			CompanyURL:          companyURLFields.resolve(row),
			SizeBucket:          companySizeFields.resolve(row),
			Source:              sourceFields.resolve(row),
		}
		if company.CompanyID == "" {
			company.CompanyID = fmt.Sprintf("company-%d", i)
		}
		if company.CompanyName == "" {
			company.CompanyName = "Unknown"
		}
		if company.Source == "" {
			company.Source = "unknown"
		}
		companies = append(companies, company)
	}
	return companies
}
