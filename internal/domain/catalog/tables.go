package catalog

import "github.com/okian/giftmatch/internal/domain/types"

// Team names used as join keys by every team mapping table.
const (
	teamNursery     = "Babies & Toddlers (Nursery)"
	teamSchoolAge   = "School Age"
	teamMiddle      = "Middle School Students"
	teamHigh        = "High School Students"
	teamYoungAdult  = "Young Adult/College"
	teamMarriage    = "Marriage Ministry"
	teamWomens      = "Women's Ministry"
	teamMens        = "Men's Ministry"
	teamFosterAdopt = "Adoption & Foster Support"
	teamOutreach    = "Outreach Ministry"
)

const defaultOpportunityBaseURL = "https://mvccfrederick.org/opportunity-details/?id="

func defaultTeams() []types.Team {
	return []types.Team{
		{ID: "nursery", Name: teamNursery, Description: "Caring for infants and toddlers during services, creating a safe and loving environment for our youngest members.", Link: "https://mvccfrederick.com/children"},
		{ID: "school-age", Name: teamSchoolAge, Description: "Children's ministry for elementary-aged kids, helping them learn about God's love through engaging lessons and activities.", Link: "https://mvccfrederick.com/children"},
		{ID: "middle-school", Name: teamMiddle, Description: "Youth ministry for middle schoolers (The Ridge), providing a fun and faith-building community for students.", Link: "https://mvccfrederick.com/middle-school"},
		{ID: "high-school", Name: teamHigh, Description: "Youth ministry for high schoolers (The Peak), equipping teens to live out their faith boldly.", Link: "https://mvccfrederick.com/high-school"},
		{ID: "young-adult", Name: teamYoungAdult, Description: "College-age ministry featuring small groups, mission trips, retreats, and special events for young adults.", Link: "https://mvccfrederick.com/college"},
		{ID: "marriage", Name: teamMarriage, Description: "Christ-centered mentoring program supporting and strengthening marriages through trained marriage mentors.", Link: "https://mvccfrederick.com/marriage"},
		{ID: "womens", Name: teamWomens, Description: "Bible studies, mentoring (Triads), retreats, and community opportunities for women to grow together in faith.", Link: "https://mvccfrederick.com/women"},
		{ID: "mens", Name: teamMens, Description: "Bible studies, breakfast gatherings, adventure trips, and mentoring opportunities for men to grow spiritually.", Link: "https://mvccfrederick.com/men"},
		{ID: "foster-adoption", Name: teamFosterAdopt, Description: "Partnership supporting foster and adoptive families through childcare, meals, mentoring, and practical help.", Link: "https://mvccfrederick.com/ovcministry"},
		{ID: "outreach", Name: teamOutreach, Description: "Local and global outreach opportunities including short-term trips, partnerships, and community service.", Link: "https://mvccfrederick.com/outreach"},
	}
}

func defaultOpportunities() []types.Opportunity {
	return []types.Opportunity{
		{ID: 52, Title: "Children's Ministry Volunteer", Description: "Serve elementary-aged kids through engaging lessons and activities."},
		{ID: 109, Title: "Children's Ministry Youth Helper", Description: "Youth helpers assisting in children's ministry during services."},
		{ID: 54, Title: "Coffee Bar", Description: "Create a welcoming atmosphere by serving coffee and refreshments."},
		{ID: 55, Title: "Connector", Description: "Help guests feel welcome and connected to the church community."},
		{ID: 72, Title: "Parking", Description: "Assist with parking lot logistics and greet people as they arrive."},
		{ID: 51, Title: "Usher", Description: "Welcome attendees, assist with seating, and help services run smoothly."},
		{ID: 60, Title: "Worship Band", Description: "Lead the congregation in worship through music and song."},
		{ID: 59, Title: "Worship Tech Team", Description: "Run sound, lighting, and visuals to support worship services."},
		{ID: 61, Title: "Outreach Team", Description: "Engage in local and global outreach to share God's love."},
		{ID: 62, Title: "Safety & Security Team", Description: "Help ensure a safe environment for everyone on campus."},
		{ID: 73, Title: "Prayer Team", Description: "Intercede for the church body and pray with people during services."},
		{ID: 74, Title: "Care Team", Description: "Provide compassionate support and care to those in need."},
		{ID: 75, Title: "Marriage Mentors", Description: "Mentor and support married couples through a Christ-centered program."},
		{ID: 44, Title: "Meals Ministry", Description: "Prepare and deliver meals to families during times of need."},
		{ID: 219, Title: "Child Care Team", Description: "Care for infants and toddlers in a safe, loving nursery environment."},
		{ID: 224, Title: "Hospitality Team", Description: "Help create a warm and inviting experience for everyone at MVCC."},
		{ID: 56, Title: "Student Ministry (Middle School)", Description: "Invest in middle schoolers through mentoring and fun community."},
		{ID: 57, Title: "Student Ministry (High School)", Description: "Walk alongside high schoolers as they grow in faith."},
	}
}

func defaultGiftQuestions() map[types.GiftCategory][]int {
	return map[types.GiftCategory][]int{
		types.Administration: {13, 17, 30, 37},
		types.Evangelism:     {8, 27, 34, 41},
		types.Exhortation:    {12, 25, 32, 40},
		types.Giving:         {16, 21, 28, 44},
		types.Hospitality:    {3, 24, 29, 47},
		types.Leadership:     {9, 15, 22, 42},
		types.Mercy:          {11, 20, 35, 43},
		types.Pastoring:      {7, 19, 26, 33},
		types.Serving:        {14, 23, 36, 45},
		types.Teaching:       {4, 10, 38, 46},
		types.Wisdom:         {6, 18, 31, 39},
	}
}

func defaultGiftTeams() map[types.GiftCategory][]string {
	return map[types.GiftCategory][]string{
		types.Teaching:       {teamSchoolAge, teamMiddle, teamHigh, teamYoungAdult},
		types.Pastoring:      {teamMarriage, teamWomens, teamMens, teamYoungAdult},
		types.Mercy:          {teamFosterAdopt, teamNursery},
		types.Hospitality:    {teamNursery, teamWomens, teamMens},
		types.Serving:        {teamNursery, teamSchoolAge, teamFosterAdopt, teamOutreach},
		types.Leadership:     {teamMiddle, teamHigh, teamYoungAdult, teamMens},
		types.Evangelism:     {teamOutreach, teamYoungAdult},
		types.Exhortation:    {teamMarriage, teamWomens, teamMens, teamFosterAdopt},
		types.Administration: {teamOutreach},
		types.Giving:         {teamOutreach, teamFosterAdopt},
		types.Wisdom:         {teamMarriage, teamMens, teamWomens},
	}
}

func defaultGiftOpportunities() map[types.GiftCategory][]int {
	return map[types.GiftCategory][]int{
		types.Teaching:       {52, 56, 57},
		types.Pastoring:      {75, 74, 57},
		types.Mercy:          {74, 44, 73},
		types.Hospitality:    {54, 55, 224},
		types.Serving:        {51, 72, 44},
		types.Leadership:     {57, 56, 60},
		types.Evangelism:     {61, 55},
		types.Exhortation:    {74, 75, 73},
		types.Administration: {59, 62},
		types.Giving:         {61, 44},
		types.Wisdom:         {75, 73},
	}
}

// A value of 0 marks a team with no direct opportunity.
func defaultTeamOpportunity() map[string]int {
	return map[string]int{
		teamNursery:     219,
		teamSchoolAge:   52,
		teamMiddle:      56,
		teamHigh:        57,
		teamMarriage:    75,
		teamOutreach:    61,
		teamFosterAdopt: 74,
		teamWomens:      74,
		teamMens:        74,
		teamYoungAdult:  0,
	}
}

func defaultPassionTeams() map[types.PassionCategory][]string {
	return map[types.PassionCategory][]string{
		types.PassionEducation:    {teamSchoolAge, teamMiddle, teamHigh},
		types.PassionAbuse:        {teamFosterAdopt},
		types.PassionFinances:     {teamOutreach},
		types.PassionPoverty:      {teamOutreach},
		types.PassionArtsMusic:    {},
		types.PassionOutdoors:     {teamOutreach},
		types.PassionMarriage:     {teamMarriage},
		types.PassionSafety:       {},
		types.PassionConstruction: {teamOutreach},
		types.PassionParenting:    {teamNursery, teamSchoolAge},
		types.PassionHealth:       {},
	}
}

func defaultPassionOpportunities() map[types.PassionCategory][]int {
	return map[types.PassionCategory][]int{
		types.PassionEducation:    {52, 56, 57},
		types.PassionAbuse:        {74},
		types.PassionFinances:     {61},
		types.PassionPoverty:      {61, 44},
		types.PassionArtsMusic:    {60},
		types.PassionOutdoors:     {72},
		types.PassionMarriage:     {75},
		types.PassionSafety:       {62},
		types.PassionConstruction: {61},
		types.PassionParenting:    {219, 52},
		types.PassionHealth:       {74, 73},
	}
}

func defaultSkillTeams() map[types.SkillCategory][]string {
	return map[types.SkillCategory][]string{
		types.SkillTeaching:   {teamSchoolAge, teamMiddle, teamHigh},
		types.SkillTangibly:   {teamOutreach, teamFosterAdopt},
		types.SkillGiving:     {teamOutreach},
		types.SkillCooking:    {teamFosterAdopt},
		types.SkillOrganizing: {teamOutreach},
		types.SkillCounseling: {teamMarriage, teamWomens, teamMens},
		types.SkillDesigning:  {},
	}
}

func defaultSkillOpportunities() map[types.SkillCategory][]int {
	return map[types.SkillCategory][]int{
		types.SkillTeaching:   {52, 56, 57},
		types.SkillTangibly:   {51, 72, 44},
		types.SkillGiving:     {61},
		types.SkillCooking:    {44, 54},
		types.SkillOrganizing: {59, 62},
		types.SkillCounseling: {74, 75, 73},
		types.SkillDesigning:  {59, 60},
	}
}

func defaultPassionLabels() map[types.PassionCategory]string {
	return map[types.PassionCategory]string{
		types.PassionEducation:    "Education",
		types.PassionAbuse:        "Abuse Recovery & Prevention",
		types.PassionFinances:     "Financial Stewardship",
		types.PassionPoverty:      "Poverty & Hunger",
		types.PassionArtsMusic:    "Arts & Music",
		types.PassionOutdoors:     "Outdoors & Recreation",
		types.PassionMarriage:     "Marriage & Family",
		types.PassionSafety:       "Safety & Security",
		types.PassionConstruction: "Construction & Maintenance",
		types.PassionParenting:    "Parenting & Childcare",
		types.PassionHealth:       "Health & Wellness",
	}
}

func defaultSkillLabels() map[types.SkillCategory]string {
	return map[types.SkillCategory]string{
		types.SkillTeaching:   "Teaching & Training",
		types.SkillTangibly:   "Hands-On Serving",
		types.SkillGiving:     "Generous Giving",
		types.SkillCooking:    "Cooking & Meals",
		types.SkillOrganizing: "Planning & Organizing",
		types.SkillCounseling: "Counseling & Listening",
		types.SkillDesigning:  "Creative Design",
	}
}
