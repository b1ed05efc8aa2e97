package generate

import "fmt"

var firstNames = []string{"John", "Jane", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry"}

var lastNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}

var companySuffixes = []string{"Labs", "Holdings", "Industries", "Ventures", "Group", "Systems", "Logistics", "Trading"}

var companyStems = []string{"Acme", "Northwind", "Globex", "Initech", "Umbrella", "Vandelay", "Stark", "Wayne", "Pied Piper", "Hooli"}

var titles = []string{
	"Operations Manager",
	"Finance Lead",
	"Account Executive",
	"Procurement Specialist",
	"Travel Coordinator",
	"Office Administrator",
	"Engineering Manager",
	"Marketing Director",
}

var sentences = []string{
	"Monthly spend allocation for the regional team.",
	"Covers recurring vendor payments and subscriptions.",
	"Discretionary budget reviewed each quarter.",
	"Travel and entertainment expenses for the sales org.",
	"Shared budget for office supplies and equipment.",
}

var words = []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}

var emailDomains = []string{"example.com", "test.com", "demo.com", "mail.com"}

var countryCodes = []string{"US", "CA", "GB", "DE", "FR", "AU", "JP", "BR", "IN", "MX"}

var currencyCodes = []string{"USD", "EUR", "GBP", "CAD", "AUD", "JPY"}

var cities = []string{"Springfield", "Riverton", "Fairview", "Kingston", "Georgetown", "Ashland", "Milton", "Clayton"}

var streets = []string{"Main Street", "Oak Avenue", "Maple Drive", "Cedar Lane", "Park Boulevard", "Elm Street"}

func (g *Generator) firstName() string {
	return firstNames[g.rng.Intn(len(firstNames))]
}

func (g *Generator) lastName() string {
	return lastNames[g.rng.Intn(len(lastNames))]
}

func (g *Generator) personName() string {
	return g.firstName() + " " + g.lastName()
}

func (g *Generator) companyName() string {
	return companyStems[g.rng.Intn(len(companyStems))] + " " + companySuffixes[g.rng.Intn(len(companySuffixes))]
}

func (g *Generator) title() string {
	return titles[g.rng.Intn(len(titles))]
}

func (g *Generator) sentence() string {
	return sentences[g.rng.Intn(len(sentences))]
}

func (g *Generator) word() string {
	return words[g.rng.Intn(len(words))]
}

func (g *Generator) email() string {
	return fmt.Sprintf("user%d@%s", g.rng.Intn(100000), emailDomains[g.rng.Intn(len(emailDomains))])
}

func (g *Generator) phone() string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", g.rng.Intn(1000), g.rng.Intn(1000), g.rng.Intn(10000))
}

func (g *Generator) countryCode() string {
	return countryCodes[g.rng.Intn(len(countryCodes))]
}

func (g *Generator) currencyCode() string {
	return currencyCodes[g.rng.Intn(len(currencyCodes))]
}

func (g *Generator) city() string {
	return cities[g.rng.Intn(len(cities))]
}

func (g *Generator) postalCode() string {
	return fmt.Sprintf("%05d", g.rng.Intn(100000))
}

func (g *Generator) address() string {
	return fmt.Sprintf("%d %s", g.rng.Intn(9999)+1, streets[g.rng.Intn(len(streets))])
}
