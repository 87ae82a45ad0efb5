package schema

// VisaOptions are the visa categories offered on the public form.
var VisaOptions = []string{"O-1", "EB-1A", "EB-2 NIW", "I don't know"}

// Countries is the default country-of-citizenship choice list. The
// dashboard can replace it through the form configuration endpoint; the
// server never validates submitted countries against it.
var Countries = []string{
	"Afghanistan", "Albania", "Algeria", "Argentina", "Armenia", "Australia",
	"Austria", "Azerbaijan", "Bangladesh", "Belarus", "Belgium", "Bolivia",
	"Bosnia and Herzegovina", "Brazil", "Bulgaria", "Cambodia", "Cameroon",
	"Canada", "Chile", "China", "Colombia", "Costa Rica", "Croatia", "Cuba",
	"Czech Republic", "Denmark", "Dominican Republic", "Ecuador", "Egypt",
	"El Salvador", "Estonia", "Ethiopia", "Finland", "France", "Georgia",
	"Germany", "Ghana", "Greece", "Guatemala", "Haiti", "Honduras",
	"Hungary", "Iceland", "India", "Indonesia", "Iran", "Iraq", "Ireland",
	"Israel", "Italy", "Jamaica", "Japan", "Jordan", "Kazakhstan", "Kenya",
	"Kuwait", "Kyrgyzstan", "Latvia", "Lebanon", "Libya", "Lithuania",
	"Malaysia", "Mexico", "Moldova", "Mongolia", "Morocco", "Myanmar",
	"Nepal", "Netherlands", "New Zealand", "Nicaragua", "Nigeria", "Norway",
	"Pakistan", "Panama", "Paraguay", "Peru", "Philippines", "Poland",
	"Portugal", "Romania", "Russia", "Saudi Arabia", "Senegal", "Serbia",
	"Singapore", "Slovakia", "Slovenia", "South Africa", "South Korea",
	"Spain", "Sri Lanka", "Sudan", "Sweden", "Switzerland", "Syria",
	"Taiwan", "Tajikistan", "Tanzania", "Thailand", "Trinidad and Tobago",
	"Tunisia", "Turkey", "Turkmenistan", "Uganda", "Ukraine",
	"United Arab Emirates", "United Kingdom", "United States", "Uruguay",
	"Uzbekistan", "Venezuela", "Vietnam", "Yemen", "Zambia", "Zimbabwe",
}
