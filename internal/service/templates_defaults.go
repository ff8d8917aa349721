package service

// Seeded templates available from the first session.
var defaultTemplates = []Template{
	{
		ID:        "default-retail",
		Name:      "Retail Property Focus",
		Kind:      KindScript,
		IsDefault: true,
		Content: `Hi {name}, this is Sam Gfroerer from M&M Real Estate Investment Services.

I'm calling because I specialize in helping property owners like yourself maximize returns on retail investment properties, particularly {propertyType} investments.

I noticed you own property with {company}, and I'd love to discuss some strategies that have helped my other clients increase their property values by 15-30%.

Do you have 3 minutes to discuss how this could benefit your portfolio?`,
	},
	{
		ID:        "commercial-general",
		Name:      "General Commercial",
		Kind:      KindScript,
		IsDefault: true,
		Content: `Hello {name}, this is Sam from M&M Real Estate Investment Services.

I'm reaching out because we specialize in commercial real estate investments and I believe we could help optimize your {propertyType} investment.

We've been working with property owners in your area and have some unique strategies that could significantly increase your property's value and cash flow.

Would you be interested in a brief conversation about how we might be able to help with your commercial real estate portfolio?`,
	},
	{
		ID:        "value-proposition",
		Name:      "Value-First Approach",
		Kind:      KindScript,
		IsDefault: true,
		Content: `Hi {name}, Sam Gfroerer calling from M&M Real Estate Investment Services.

I'm calling because I have some market insights specific to {propertyType} properties that I think you'd find valuable.

We've recently helped several property owners in your market increase their NOI by 20-25% through strategic improvements and tenant optimization.

I'd love to share some of these insights with you - do you have a few minutes to discuss your property at {company}?`,
	},
	{
		ID:        "standard-intro",
		Name:      "Standard Introduction",
		Kind:      KindText,
		IsDefault: true,
		Content:   `Hi {name}, this is Sam Gfroerer with M&M. I just tried giving you a quick call — I specialize in retail investment properties and wanted to connect regarding your {propertyType}. Let me know if there's a good time to chat, or feel free to text back. Looking forward to connecting!`,
	},
	{
		ID:        "brief-followup",
		Name:      "Brief Follow-up",
		Kind:      KindText,
		IsDefault: true,
		Content:   `Hi {name}, Sam from M&M here. Just called about your {propertyType}. I help investors with retail properties - would love to connect when you have a moment. Text or call back when convenient!`,
	},
	{
		ID:        "value-proposition-text",
		Name:      "Value Proposition",
		Kind:      KindText,
		IsDefault: true,
		Content:   `Hi {name}, this is Sam with M&M. I specialize in maximizing returns on retail investment properties like your {propertyType}. Just tried calling - would appreciate a few minutes to discuss how I can help. Feel free to text back!`,
	},
	{
		ID:        "email-followup",
		Name:      "Email Follow-up",
		Kind:      KindText,
		IsDefault: true,
		Content:   `Hi {name}, Sam from M&M Real Estate. I tried calling about your {propertyType} investment. I'll send you an email with some market insights that might interest you. Feel free to call or text back if you'd like to discuss further.`,
	},
}
