package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Storage settings
	Storage StorageConfig `yaml:"storage"`

	// Totals formula toggles
	Totals TotalsConfig `yaml:"totals"`

	// Currency formatting
	Currency CurrencyConfig `yaml:"currency"`

	// Business info printed on every invoice
	Business BusinessConfig `yaml:"business"`
}

type StorageConfig struct {
	Path      string `yaml:"path"`       // Path to the invoice data file
	OutputDir string `yaml:"output_dir"` // Directory for generated PDFs
	LogPath   string `yaml:"log_path"`   // Path to the debug log file
}

// TotalsConfig selects which terms participate in the grand total.
// The formula is: subtotal - discount [+ delivery fee] [+ VAT].
type TotalsConfig struct {
	DeliveryFeeEnabled bool    `yaml:"delivery_fee_enabled"`
	VATEnabled         bool    `yaml:"vat_enabled"`
	VATRate            float64 `yaml:"vat_rate"` // As decimal (0.075 = 7.5%)
}

type CurrencyConfig struct {
	Symbol string `yaml:"symbol"`
	Locale string `yaml:"locale"` // BCP-47 tag used for digit grouping
}

// BusinessConfig carries the seller details, payment accounts and terms
// rendered on the document.
type BusinessConfig struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`

	Payment          PaymentAccount `yaml:"payment"`
	AlternatePayment PaymentAccount `yaml:"alternate_payment"`

	Note   string   `yaml:"note"`
	Terms  []string `yaml:"terms"`
	Footer string   `yaml:"footer"`
}

type PaymentAccount struct {
	AccountNo   string `yaml:"account_no"`
	AccountName string `yaml:"account_name"`
	BankName    string `yaml:"bank_name"`
}

// DefaultConfigPath returns ~/.config/tmech-invoice/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "tmech-invoice", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "tmech-invoice", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	base := filepath.Join(homeDir, ".config", "tmech-invoice")

	return &Config{
		Storage: StorageConfig{
			Path:      filepath.Join(base, "invoice.json"),
			OutputDir: filepath.Join(base, "invoices"),
			LogPath:   filepath.Join(base, "tmech.log"),
		},
		Totals: TotalsConfig{
			DeliveryFeeEnabled: true,
			VATEnabled:         false,
			VATRate:            0.075,
		},
		Currency: CurrencyConfig{
			Symbol: "₦",
			Locale: "en-NG",
		},
		Business: BusinessConfig{
			Name:    "T.Mech Exclusive",
			Address: "72, Ojuelegba road, beside GT Bank, Lagos",
			Email:   "taylor.mechanic018@gmail.com",
			Phone:   "+2349057336051",
			Payment: PaymentAccount{
				AccountNo:   "7825836128",
				AccountName: "Imoninya Raymond",
				BankName:    "Pocket App",
			},
			AlternatePayment: PaymentAccount{
				AccountNo:   "1006027241",
				AccountName: "Imoninya Raymond",
				BankName:    "VFD Microfinance bank",
			},
			Note: "THIS INVOICE IS VALID FOR 30 DAYS",
			Terms: []string{
				"Payment Validates Order",
				"Minimum of 80% initial payment of the total charge required",
				"Product will be delivered within 14 to 21 working days from the date of initial payment.",
				"Enjoy 3% discount when you make an outright payment (Only after 3 consecutive outright payments)",
				"Payment balance to be paid on or before delivery.",
				"Kindly send proof of payment for confirmation.",
			},
			Footer: "THANK YOU FOR YOUR BUSINESS",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates all necessary directories (for data, PDFs, logs)
func (c *Config) EnsureDirectories() error {
	// Create data directory
	dataDir := filepath.Dir(c.Storage.Path)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	// Create PDF output directory
	if err := os.MkdirAll(c.Storage.OutputDir, 0755); err != nil {
		return err
	}

	return nil
}
