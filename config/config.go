// Package config loads print and company settings from a .env file and the
// environment.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"invoiceprint/services"
)

type Config struct {
	Print   PrintConfig
	Words   WordsConfig
	Invoice InvoiceConfig
	Company CompanyConfig
}

type PrintConfig struct {
	RowsPerPage     int
	CGSTRate        float64
	SGSTRate        float64
	EmptyInvoice    services.EmptyPolicy
	Declaration     string
	QuantityAliases []string
	PriceAliases    []string
	AmountAliases   []string
}

type WordsConfig struct {
	System string
	Suffix string
}

type InvoiceConfig struct {
	NumberPrefix string
}

type CompanyConfig struct {
	Name     string
	Address  string
	GSTIN    string
	Email    string
	LogoPath string
}

// Load reads .env from the working directory (if present) and the process
// environment into the global viper instance.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	return LoadFrom(viper.GetViper())
}

// LoadFrom builds a Config from v after applying defaults.
func LoadFrom(v *viper.Viper) *Config {
	setDefaults(v)

	return &Config{
		Print: PrintConfig{
			RowsPerPage:     v.GetInt("PRINT_ROWS_PER_PAGE"),
			CGSTRate:        v.GetFloat64("PRINT_CGST_RATE"),
			SGSTRate:        v.GetFloat64("PRINT_SGST_RATE"),
			EmptyInvoice:    services.ParseEmptyPolicy(v.GetString("PRINT_EMPTY_INVOICE")),
			Declaration:     v.GetString("PRINT_DECLARATION"),
			QuantityAliases: splitList(v.GetString("PRINT_QUANTITY_ALIASES")),
			PriceAliases:    splitList(v.GetString("PRINT_PRICE_ALIASES")),
			AmountAliases:   splitList(v.GetString("PRINT_AMOUNT_ALIASES")),
		},
		Words: WordsConfig{
			System: v.GetString("WORDS_SYSTEM"),
			Suffix: v.GetString("WORDS_SUFFIX"),
		},
		Invoice: InvoiceConfig{
			NumberPrefix: v.GetString("INVOICE_NUMBER_PREFIX"),
		},
		Company: CompanyConfig{
			Name:     v.GetString("COMPANY_NAME"),
			Address:  v.GetString("COMPANY_ADDRESS"),
			GSTIN:    v.GetString("COMPANY_GSTIN"),
			Email:    v.GetString("COMPANY_EMAIL"),
			LogoPath: v.GetString("COMPANY_LOGO_PATH"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PRINT_ROWS_PER_PAGE", services.DefaultRowsPerPage)
	v.SetDefault("PRINT_CGST_RATE", 0.09)
	v.SetDefault("PRINT_SGST_RATE", 0.09)
	v.SetDefault("PRINT_EMPTY_INVOICE", string(services.EmptyBlankPage))
	v.SetDefault("PRINT_DECLARATION", services.DefaultDeclaration)
	v.SetDefault("PRINT_QUANTITY_ALIASES", "")
	v.SetDefault("PRINT_PRICE_ALIASES", "")
	v.SetDefault("PRINT_AMOUNT_ALIASES", "")
	v.SetDefault("WORDS_SYSTEM", "indian")
	v.SetDefault("WORDS_SUFFIX", services.DefaultWordsSuffix)
	v.SetDefault("INVOICE_NUMBER_PREFIX", "INV")
	v.SetDefault("COMPANY_NAME", "")
	v.SetDefault("COMPANY_ADDRESS", "")
	v.SetDefault("COMPANY_GSTIN", "")
	v.SetDefault("COMPANY_EMAIL", "")
	v.SetDefault("COMPANY_LOGO_PATH", "")
}

// LayoutOptions turns the print settings into composer options. Configured
// aliases extend the default header classifier.
func (c *Config) LayoutOptions() services.LayoutOptions {
	opts := services.DefaultLayoutOptions()
	if c.Print.RowsPerPage > 0 {
		opts.RowsPerPage = c.Print.RowsPerPage
	}
	opts.Rates = services.TaxRates{CGST: c.Print.CGSTRate, SGST: c.Print.SGSTRate}
	opts.Empty = c.Print.EmptyInvoice
	if c.Print.Declaration != "" {
		opts.Declaration = c.Print.Declaration
	}
	opts.Words = services.NewWordsConverter(c.Words.System)
	if c.Words.Suffix != "" {
		opts.WordsSuffix = c.Words.Suffix
	}

	if len(c.Print.QuantityAliases)+len(c.Print.PriceAliases)+len(c.Print.AmountAliases) > 0 {
		rules := services.DefaultClassifierRules()
		rules.Quantity = append(rules.Quantity, c.Print.QuantityAliases...)
		rules.Price = append(rules.Price, c.Print.PriceAliases...)
		rules.Amount = append(rules.Amount, c.Print.AmountAliases...)
		opts.Rules = &rules
	}
	return opts
}

// CompanyInfo is the issuing company printed in every page header.
func (c *Config) CompanyInfo() services.CompanyInfo {
	return services.CompanyInfo{
		Name:    c.Company.Name,
		Address: c.Company.Address,
		GSTIN:   c.Company.GSTIN,
		Email:   c.Company.Email,
	}
}

// Logo reads the configured logo file. A missing or unreadable file is
// logged and yields nil.
func (c *Config) Logo() *services.Logo {
	if c.Company.LogoPath == "" {
		return nil
	}
	data, err := os.ReadFile(c.Company.LogoPath)
	if err != nil {
		log.Printf("config: could not read logo %s: %v", c.Company.LogoPath, err)
		return nil
	}
	return &services.Logo{
		Data:      data,
		Extension: strings.TrimPrefix(filepath.Ext(c.Company.LogoPath), "."),
	}
}

// splitList splits a comma separated setting, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
