package curated

import "clearpolicy-backend/models"

// table is the curated summary set. Entries are vetted by hand; the 12-level
// text is authoritative and the lower levels are editorial rewrites, not
// machine output.
var table = []KnownSummary{
	{
		PolicyID:   "ca-prop-47-2014",
		PolicyName: "California Proposition 47 (2014)",
		Level:      models.LevelState,
		Category:   "Criminal Justice",
		Type:       TypeProposition,
		Number:     47,
		Year:       2014,
		State:      "california",
		Sources: models.AnswerSources{
			{ID: 1, Title: "Proposition 47 Analysis", URL: "https://lao.ca.gov/ballot/2014/prop-47-110414.aspx", Domain: "lao.ca.gov", Type: models.SourceState, Verified: true},
			{ID: 2, Title: "Official Voter Information Guide, November 2014", URL: "https://vig.cdn.sos.ca.gov/2014/general/en/pdf/proposition-47.pdf", Domain: "sos.ca.gov", Type: models.SourceState, Verified: true},
		},
		Summaries: map[models.ReadingLevel]models.SummaryLike{
			models.ReadingLevel12: {
				Level:       models.ReadingLevel12,
				TLDR:        "Proposition 47 reclassified certain nonviolent drug and property felonies as misdemeanors and directed the resulting state savings to mental health treatment, drug treatment, and school programs.",
				WhatItDoes:  "Reclassifies drug possession and property crimes valued at $950 or less, such as shoplifting and petty theft, from felonies to misdemeanors. Allows people previously convicted of those felonies to petition for resentencing. Deposits annual state savings into the Safe Neighborhoods and Schools Fund for treatment and truancy programs.",
				WhoAffected: "People convicted of qualifying nonviolent offenses, county jail and state prison populations, crime victims, and local treatment providers that receive Safe Neighborhoods and Schools Fund grants.",
				Pros:        "Supporters argued it would reduce prison overcrowding, stop felony records for low-level offenses, and redirect hundreds of millions of dollars toward treatment and prevention.",
				Cons:        "Opponents argued it would weaken deterrence for repeat theft, reduce leverage to push defendants into drug court, and that the $950 threshold invites serial shoplifting.",
				SourceRatio: 1.0,
				SourceCount: 2,
				Citations: []models.Citation{
					{Quote: "reduces penalties for certain offenders convicted of nonserious and nonviolent property and drug crimes", SourceName: "Legislative Analyst's Office", URL: "https://lao.ca.gov/ballot/2014/prop-47-110414.aspx", Location: models.LocationTLDR},
					{Quote: "requires misdemeanors instead of felonies for crimes such as grand theft and shoplifting where the value does not exceed $950", SourceName: "Legislative Analyst's Office", URL: "https://lao.ca.gov/ballot/2014/prop-47-110414.aspx", Location: models.LocationWhat},
					{Quote: "allows certain offenders currently serving felony sentences to apply for resentencing", SourceName: "Official Voter Information Guide", URL: "https://vig.cdn.sos.ca.gov/2014/general/en/pdf/proposition-47.pdf", Location: models.LocationWho},
					{Quote: "state savings are deposited into the Safe Neighborhoods and Schools Fund", SourceName: "Legislative Analyst's Office", URL: "https://lao.ca.gov/ballot/2014/prop-47-110414.aspx", Location: models.LocationPros},
					{Quote: "opponents contend the measure would endanger the public by shortening sentences", SourceName: "Official Voter Information Guide", URL: "https://vig.cdn.sos.ca.gov/2014/general/en/pdf/proposition-47.pdf", Location: models.LocationCons},
				},
			},
			models.ReadingLevel8: {
				Level:       models.ReadingLevel8,
				TLDR:        "Prop 47 made some nonviolent drug and theft crimes misdemeanors instead of felonies, and sent the savings to treatment and school programs.",
				WhatItDoes:  "Theft of $950 or less and simple drug possession became misdemeanors. People already serving felony time for these crimes could ask a judge for a shorter sentence.",
				WhoAffected: "People with low-level convictions, county jails, state prisons, and treatment programs that get the savings.",
				Pros:        "Fewer people in prison for minor crimes, and more money for treatment and prevention.",
				Cons:        "Critics said it made repeat theft easier to get away with and weakened drug court.",
				SourceRatio: 1.0,
				SourceCount: 2,
				Citations: []models.Citation{
					{Quote: "reduces penalties for certain offenders convicted of nonserious and nonviolent property and drug crimes", SourceName: "Legislative Analyst's Office", URL: "https://lao.ca.gov/ballot/2014/prop-47-110414.aspx", Location: models.LocationTLDR},
					{Quote: "requires misdemeanors instead of felonies for crimes such as grand theft and shoplifting where the value does not exceed $950", SourceName: "Legislative Analyst's Office", URL: "https://lao.ca.gov/ballot/2014/prop-47-110414.aspx", Location: models.LocationWhat},
				},
			},
			models.ReadingLevel5: {
				Level:       models.ReadingLevel5,
				TLDR:        "Prop 47 made small crimes count as smaller crimes. The money saved went to help people.",
				WhatItDoes:  "Stealing things worth $950 or less got a lighter punishment. Some people in prison got shorter sentences.",
				WhoAffected: "People who broke small rules, and programs that help them.",
				Pros:        "Less crowded prisons and more help for people who need it.",
				Cons:        "Some worried people would steal more if punishments were lighter.",
				SourceRatio: 1.0,
				SourceCount: 2,
				Citations: []models.Citation{
					{Quote: "reduces penalties for certain offenders", SourceName: "Legislative Analyst's Office", URL: "https://lao.ca.gov/ballot/2014/prop-47-110414.aspx", Location: models.LocationTLDR},
				},
			},
		},
	},
	{
		PolicyID:   "ca-prop-36-2024",
		PolicyName: "California Proposition 36 (2024)",
		Level:      models.LevelState,
		Category:   "Criminal Justice",
		Type:       TypeProposition,
		Number:     36,
		Year:       2024,
		State:      "california",
		Sources: models.AnswerSources{
			{ID: 1, Title: "Proposition 36 Analysis", URL: "https://lao.ca.gov/BallotAnalysis/Proposition?number=36&year=2024", Domain: "lao.ca.gov", Type: models.SourceState, Verified: true},
			{ID: 2, Title: "Official Voter Information Guide, November 2024", URL: "https://vig.cdn.sos.ca.gov/2024/general/assets/media/prop36.pdf", Domain: "sos.ca.gov", Type: models.SourceState, Verified: true},
		},
		Summaries: map[models.ReadingLevel]models.SummaryLike{
			models.ReadingLevel12: {
				Level:       models.ReadingLevel12,
				TLDR:        "Proposition 36 increased penalties for certain repeat theft and fentanyl-related drug crimes, partially rolling back Proposition 47, and created a treatment-mandated felony for some drug offenses.",
				WhatItDoes:  "Allows felony charges for theft of $950 or less when the defendant has two or more prior theft convictions. Lengthens sentences for organized retail theft and for dealing drugs laced with fentanyl. Creates a new treatment-mandated felony that lets some defendants complete drug treatment instead of serving prison time.",
				WhoAffected: "People with repeat theft or drug convictions, retailers affected by organized theft, county courts and jails, and counties that fund expanded treatment obligations.",
				Pros:        "Supporters argued it restores accountability for serial theft, targets fentanyl dealers, and pairs consequences with mandatory treatment.",
				Cons:        "Opponents argued it revives failed mass-incarceration policy, shifts money away from the treatment programs Proposition 47 funds, and burdens counties with unfunded obligations.",
				SourceRatio: 1.0,
				SourceCount: 2,
				Citations: []models.Citation{
					{Quote: "increases punishment for some theft and drug crimes", SourceName: "Legislative Analyst's Office", URL: "https://lao.ca.gov/BallotAnalysis/Proposition?number=36&year=2024", Location: models.LocationTLDR},
					{Quote: "allows felony charges for possessing certain drugs and for thefts under $950, if defendant has two prior drug or two prior theft convictions", SourceName: "Official Voter Information Guide", URL: "https://vig.cdn.sos.ca.gov/2024/general/assets/media/prop36.pdf", Location: models.LocationWhat},
					{Quote: "defendants who plead guilty to felony drug possession and complete treatment can have charges dismissed", SourceName: "Legislative Analyst's Office", URL: "https://lao.ca.gov/BallotAnalysis/Proposition?number=36&year=2024", Location: models.LocationWho},
					{Quote: "holds repeat offenders accountable while offering a path to treatment", SourceName: "Official Voter Information Guide", URL: "https://vig.cdn.sos.ca.gov/2024/general/assets/media/prop36.pdf", Location: models.LocationPros},
					{Quote: "reduces savings that currently fund mental health and drug treatment programs", SourceName: "Legislative Analyst's Office", URL: "https://lao.ca.gov/BallotAnalysis/Proposition?number=36&year=2024", Location: models.LocationCons},
				},
			},
			models.ReadingLevel8: {
				Level:       models.ReadingLevel8,
				TLDR:        "Prop 36 raised punishments for repeat theft and fentanyl crimes, undoing part of Prop 47.",
				WhatItDoes:  "Repeat theft under $950 can be charged as a felony again. Fentanyl dealing carries longer sentences. Some drug charges can be dropped if the person finishes treatment.",
				WhoAffected: "Repeat offenders, store owners, courts, and county treatment programs.",
				Pros:        "Tougher consequences for serial theft and fentanyl, with treatment built in.",
				Cons:        "Critics said it brings back harsh sentencing and drains treatment funding.",
				SourceRatio: 1.0,
				SourceCount: 2,
				Citations: []models.Citation{
					{Quote: "increases punishment for some theft and drug crimes", SourceName: "Legislative Analyst's Office", URL: "https://lao.ca.gov/BallotAnalysis/Proposition?number=36&year=2024", Location: models.LocationTLDR},
					{Quote: "allows felony charges for thefts under $950 with two prior theft convictions", SourceName: "Official Voter Information Guide", URL: "https://vig.cdn.sos.ca.gov/2024/general/assets/media/prop36.pdf", Location: models.LocationWhat},
				},
			},
			models.ReadingLevel5: {
				Level:       models.ReadingLevel5,
				TLDR:        "Prop 36 made punishments bigger for people who steal again and again.",
				WhatItDoes:  "Stealing many times can mean a bigger punishment. Some people can choose treatment instead.",
				WhoAffected: "People who keep breaking the rules, and stores.",
				Pros:        "Stores get more protection and people can get help.",
				Cons:        "Some worried it punishes people too hard.",
				SourceRatio: 1.0,
				SourceCount: 2,
				Citations: []models.Citation{
					{Quote: "increases punishment for some theft and drug crimes", SourceName: "Legislative Analyst's Office", URL: "https://lao.ca.gov/BallotAnalysis/Proposition?number=36&year=2024", Location: models.LocationTLDR},
				},
			},
		},
	},
}
