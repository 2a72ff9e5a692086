package reports

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/username/fopzvit/src/models"
)

var (
	tinPattern        = regexp.MustCompile(`^\d{10}$`)
	postalCodePattern = regexp.MustCompile(`^\d{5}$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateReport checks the assembled declaration and profile before
// XML generation is allowed. All checks run; the caller gets the full
// list of problems at once.
func ValidateReport(report *models.TaxReport, profile *models.FOPProfile) []string {
	var errs []string

	if !tinPattern.MatchString(profile.TIN) {
		errs = append(errs, "ІПН повинен містити 10 цифр")
	}

	if _, _, err := ParseTaxOfficeCode(profile.TaxOffice.Code); err != nil {
		errs = append(errs, "Код податкової повинен містити 4 цифри")
	}

	if strings.TrimSpace(profile.FullName) == "" {
		errs = append(errs, "ПІБ є обов'язковим")
	}

	if strings.TrimSpace(profile.KVED.Primary.Code) == "" {
		errs = append(errs, "Код основного КВЕДу є обов'язковим")
	}

	if strings.TrimSpace(profile.KVED.Primary.Name) == "" {
		errs = append(errs, "Назва основного КВЕДу є обов'язковою")
	}

	if report.IncomeSection.TotalIncome.CumulativeFromYearStart <= 0 {
		errs = append(errs, "Сума доходів повинна бути більшою за 0")
	}

	if report.IncomeSection.TotalIncome.CumulativeFromYearStart > profile.YearlyIncomeLimit {
		errs = append(errs, fmt.Sprintf("Доходи перевищують ліміт для 3-ї групи (%.2f грн)", profile.YearlyIncomeLimit))
	}

	return errs
}

// ValidateESVReport checks the social-contribution annex content.
func ValidateESVReport(report *models.ESVReport, profile *models.FOPProfile) []string {
	var errs []string

	if !tinPattern.MatchString(profile.TIN) {
		errs = append(errs, "ІПН повинен містити 10 цифр")
	}

	if _, _, err := ParseTaxOfficeCode(profile.TaxOffice.Code); err != nil {
		errs = append(errs, "Код податкової повинен містити 4 цифри")
	}

	if strings.TrimSpace(profile.FullName) == "" {
		errs = append(errs, "ПІБ є обов'язковим")
	}

	if strings.TrimSpace(profile.KVED.Primary.Code) == "" {
		errs = append(errs, "Код основного КВЕДу є обов'язковим")
	}

	if len(report.MonthlyData) != 12 {
		errs = append(errs, "Звіт повинен містити дані за всі 12 місяців")
	}

	for i, monthData := range report.MonthlyData {
		if monthData.IncomeBase < 0 {
			errs = append(errs, fmt.Sprintf("Сума доходу за %d місяць не може бути від'ємною", i+1))
		}
		if monthData.ContributionRate <= 0 || monthData.ContributionRate > 100 {
			errs = append(errs, fmt.Sprintf("Ставка ЄСВ за %d місяць повинна бути від 0 до 100%%", i+1))
		}
	}

	return errs
}

// ValidateProfile checks the taxpayer profile on save, covering the
// contact and address fields the declarations render.
func ValidateProfile(profile *models.FOPProfile) []string {
	var errs []string

	if strings.TrimSpace(profile.FullName) == "" {
		errs = append(errs, "ПІБ є обов'язковим")
	}

	tin := strings.TrimSpace(profile.TIN)
	if tin == "" {
		errs = append(errs, "ІПН є обов'язковим")
	} else if !tinPattern.MatchString(tin) {
		errs = append(errs, "ІПН повинен містити 10 цифр")
	}

	if strings.TrimSpace(profile.Address.Region) == "" {
		errs = append(errs, "Область є обов'язковою")
	}
	if strings.TrimSpace(profile.Address.City) == "" {
		errs = append(errs, "Місто/селище є обов'язковим")
	}
	if strings.TrimSpace(profile.Address.Street) == "" {
		errs = append(errs, "Вулиця є обов'язковою")
	}
	if strings.TrimSpace(profile.Address.Building) == "" {
		errs = append(errs, "Номер будинку є обов'язковим")
	}

	postalCode := strings.TrimSpace(profile.Address.PostalCode)
	if postalCode == "" {
		errs = append(errs, "Поштовий індекс є обов'язковим")
	} else if !postalCodePattern.MatchString(postalCode) {
		errs = append(errs, "Поштовий індекс повинен містити 5 цифр")
	}

	if strings.TrimSpace(profile.Phone) == "" {
		errs = append(errs, "Телефон є обов'язковим")
	}

	email := strings.TrimSpace(profile.Email)
	if email == "" {
		errs = append(errs, "Email є обов'язковим")
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, "Некоректний формат email")
	}

	if strings.TrimSpace(profile.TaxOffice.Name) == "" {
		errs = append(errs, "Назва податкової є обов'язковою")
	}

	if strings.TrimSpace(profile.KVED.Primary.Code) == "" {
		errs = append(errs, "Код основного КВЕДу є обов'язковим")
	}
	if strings.TrimSpace(profile.KVED.Primary.Name) == "" {
		errs = append(errs, "Назва основного КВЕДу є обов'язковою")
	}

	return errs
}

// IsProfileComplete reports whether the profile passes validation.
func IsProfileComplete(profile *models.FOPProfile) bool {
	if profile == nil {
		return false
	}
	return len(ValidateProfile(profile)) == 0
}
