package allocation

// category is a static template node. Percentages are relative to the parent.
type category struct {
	name        string
	description string
	percentage  float64
	children    []category
}

var methodInfos = map[Method]MethodInfo{
	NWS: {
		Id:          NWS,
		Name:        "NWS",
		Description: "Necessities, Wants, Savings method",
		Basis:       "monthly income",
	},
	Kakeibo: {
		Id:          Kakeibo,
		Name:        "Kakeibo",
		Description: "Japanese budgeting method",
		Basis:       "monthly income",
	},
	STOP: {
		Id:          STOP,
		Name:        "STOP",
		Description: "Savings, Taxes, Operations, Profit method",
		Basis:       "monthly revenue",
	},
	TaxRegimeOld: {
		Id:          TaxRegimeOld,
		Name:        "Tax (old regime)",
		Description: "Tax and take-home split under the old tax regime",
		Basis:       "annual income",
	},
	TaxRegimeNew: {
		Id:          TaxRegimeNew,
		Name:        "Tax (new regime)",
		Description: "Tax and take-home split under the new tax regime",
		Basis:       "annual income",
	},
}

var nwsCategories = []category{
	{
		name:        "Necessities",
		description: "Essential expenses and bills",
		percentage:  50,
		children: []category{
			{name: "Housing", description: "Rent, utilities, and maintenance", percentage: 30, children: []category{
				{name: "Rent/Mortgage", description: "Monthly housing payment", percentage: 70},
				{name: "Utilities", description: "Electricity, water, and internet", percentage: 30},
			}},
			{name: "Transportation", description: "Vehicle and commuting costs", percentage: 20, children: []category{
				{name: "Vehicle Expenses", description: "Loan payments and insurance", percentage: 60},
				{name: "Running Costs", description: "Fuel, maintenance, and public transport", percentage: 40},
			}},
			{name: "Food & Groceries", description: "Essential food and household items", percentage: 30, children: []category{
				{name: "Groceries", description: "Food and beverages", percentage: 80},
				{name: "Essentials", description: "Household supplies", percentage: 20},
			}},
			{name: "Insurance & Healthcare", description: "Health and other insurance", percentage: 20, children: []category{
				{name: "Health Insurance", description: "Medical coverage", percentage: 60},
				{name: "Other Insurance", description: "Life and property insurance", percentage: 40},
			}},
		},
	},
	{
		name:        "Wants",
		description: "Discretionary spending",
		percentage:  30,
		children: []category{
			{name: "Entertainment", description: "Leisure and hobbies", percentage: 30, children: []category{
				{name: "Activities", description: "Movies, concerts, and events", percentage: 70},
				{name: "Subscriptions", description: "Streaming and memberships", percentage: 30},
			}},
			{name: "Travel", description: "Trips and vacations", percentage: 25, children: []category{
				{name: "Vacation Fund", description: "Planned holidays", percentage: 80},
				{name: "Travel Insurance", description: "Trip protection", percentage: 20},
			}},
			{name: "Shopping", description: "Non-essential purchases", percentage: 25, children: []category{
				{name: "Clothing", description: "Fashion and accessories", percentage: 60},
				{name: "Personal Items", description: "Gadgets and personal care", percentage: 40},
			}},
			{name: "Dining Out", description: "Restaurants and takeout", percentage: 20, children: []category{
				{name: "Restaurants", description: "Eating out", percentage: 70},
				{name: "Takeout", description: "Food delivery", percentage: 30},
			}},
		},
	},
	{
		name:        "Savings",
		description: "Future investments and emergency fund",
		percentage:  20,
		children: []category{
			{name: "Emergency Fund", description: "Three to six months of expenses", percentage: 30, children: []category{
				{name: "Liquid Savings", description: "Instant access savings", percentage: 80},
				{name: "Buffer", description: "Short-term reserve", percentage: 20},
			}},
			{name: "Investments", description: "Long-term wealth building", percentage: 40, children: []category{
				{name: "Market Investments", description: "Stocks and mutual funds", percentage: 70},
				{name: "Fixed Income", description: "Bonds and deposits", percentage: 30},
			}},
			{name: "Retirement", description: "Retirement accounts", percentage: 20, children: []category{
				{name: "Retirement Account", description: "Pension contributions", percentage: 80},
				{name: "Additional Savings", description: "Voluntary top-ups", percentage: 20},
			}},
			{name: "Goals", description: "Specific savings targets", percentage: 10, children: []category{
				{name: "Short-term Goals", description: "Purchases within a year", percentage: 60},
				{name: "Long-term Goals", description: "Home, education, and more", percentage: 40},
			}},
		},
	},
}

var kakeiboCategories = []category{
	{
		name:        "Needs",
		description: "Essential living expenses",
		percentage:  50,
		children: []category{
			{name: "Housing", percentage: 50},
			{name: "Utilities", percentage: 20},
			{name: "Groceries", percentage: 30},
		},
	},
	{
		name:        "Wants",
		description: "Entertainment and non-essential items",
		percentage:  20,
		children: []category{
			{name: "Entertainment", percentage: 40},
			{name: "Shopping", percentage: 35},
			{name: "Dining Out", percentage: 25},
		},
	},
	{
		name:        "Culture",
		description: "Personal growth and education",
		percentage:  20,
		children: []category{
			{name: "Education", percentage: 40},
			{name: "Books", percentage: 30},
			{name: "Events", percentage: 30},
		},
	},
	{
		name:        "Unexpected",
		description: "Emergency fund and unexpected expenses",
		percentage:  10,
		children: []category{
			{name: "Emergency Fund", percentage: 50},
			{name: "Healthcare", percentage: 30},
			{name: "Repairs", percentage: 20},
		},
	},
}

var stopCategories = []category{
	{name: "Savings", description: "Business reserves and reinvestment", percentage: 20},
	{name: "Taxes", description: "Set aside for tax obligations", percentage: 15},
	{name: "Operations", description: "Running costs of the business", percentage: 45},
	{name: "Profit", description: "Owner's share of revenue", percentage: 20},
}
