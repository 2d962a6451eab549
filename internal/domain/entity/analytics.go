package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar day label used in analytics buckets.
const DateLayout = "2006-01-02"

// EventCounts holds per-kind event totals for some period.
type EventCounts struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Likes       int64 `json:"likes"`
	Dislikes    int64 `json:"dislikes"`
	Loves       int64 `json:"loves"`
	Comments    int64 `json:"comments"`
	Shares      int64 `json:"shares"`
	Saves       int64 `json:"saves"`
}

// Add adds n events of kind. Kinds without a column are ignored.
func (c *EventCounts) Add(kind EventKind, n int64) {
	switch kind {
	case EventImpression:
		c.Impressions += n
	case EventClick:
		c.Clicks += n
	case EventLike:
		c.Likes += n
	case EventDislike:
		c.Dislikes += n
	case EventLove:
		c.Loves += n
	case EventComment:
		c.Comments += n
	case EventShare:
		c.Shares += n
	case EventSave:
		c.Saves += n
	}
}

// Plus returns the field-wise sum of c and o.
func (c EventCounts) Plus(o EventCounts) EventCounts {
	return EventCounts{
		Impressions: c.Impressions + o.Impressions,
		Clicks:      c.Clicks + o.Clicks,
		Likes:       c.Likes + o.Likes,
		Dislikes:    c.Dislikes + o.Dislikes,
		Loves:       c.Loves + o.Loves,
		Comments:    c.Comments + o.Comments,
		Shares:      c.Shares + o.Shares,
		Saves:       c.Saves + o.Saves,
	}
}

// Engagements counts reactions, comments, shares and saves.
func (c EventCounts) Engagements() int64 {
	return c.Likes + c.Dislikes + c.Loves + c.Comments + c.Shares + c.Saves
}

// MetricSnapshot is EventCounts with the derived rates.
type MetricSnapshot struct {
	EventCounts
	CTR            float64 `json:"ctr"`
	EngagementRate float64 `json:"engagement_rate"`
}

// NewMetricSnapshot derives ctr and engagement rate as percentages rounded to 2 decimals.
func NewMetricSnapshot(c EventCounts) MetricSnapshot {
	return MetricSnapshot{
		EventCounts:    c,
		CTR:            RoundedPercent(c.Clicks, c.Impressions),
		EngagementRate: RoundedPercent(c.Engagements(), c.Impressions),
	}
}

// DayEventCount is one grouped row: count of kind events on a calendar day.
type DayEventCount struct {
	Day   string
	Kind  EventKind
	Count int64
}

// DailyStat is the metric snapshot of one calendar day.
type DailyStat struct {
	Date string `json:"date"`
	MetricSnapshot
}

// WindowStats covers the trailing Days calendar days, today included.
type WindowStats struct {
	CampaignID uuid.UUID      `json:"campaign_id"`
	Days       int            `json:"days"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Daily      []DailyStat    `json:"daily"`
	Summary    MetricSnapshot `json:"summary"`
}

// TodayStats covers the current calendar day.
type TodayStats struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	Date       string    `json:"date"`
	MetricSnapshot
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DayRange returns [from, to) spanning the trailing days calendar days ending today.
func DayRange(now time.Time, days int, loc *time.Location) (time.Time, time.Time) {
	today := StartOfDay(now, loc)
	return today.AddDate(0, 0, -(days - 1)), today.AddDate(0, 0, 1)
}

// IsSupportedWindow reports whether days is one of the offered rollup windows.
func IsSupportedWindow(days int) bool {
	return days == 7 || days == 30 || days == 90
}

// BuildWindowStats buckets rows per day from from, zero-filling days without events.
func BuildWindowStats(from time.Time, days int, rows []DayEventCount) WindowStats {
	byDay := make(map[string]*EventCounts, days)
	for _, row := range rows {
		counts, ok := byDay[row.Day]
		if !ok {
			counts = &EventCounts{}
			byDay[row.Day] = counts
		}
		counts.Add(row.Kind, row.Count)
	}

	stats := WindowStats{Days: days, Daily: make([]DailyStat, 0, days)}
	var total EventCounts
	for i := 0; i < days; i++ {
		label := from.AddDate(0, 0, i).Format(DateLayout)
		var counts EventCounts
		if c, ok := byDay[label]; ok {
			counts = *c
		}
		total = total.Plus(counts)
		stats.Daily = append(stats.Daily, DailyStat{Date: label, MetricSnapshot: NewMetricSnapshot(counts)})
	}
	if days > 0 {
		stats.From = stats.Daily[0].Date
		stats.To = stats.Daily[days-1].Date
	}
	stats.Summary = NewMetricSnapshot(total)

	return stats
}

// ChartPoint is one impressions/clicks sample.
type ChartPoint struct {
	Label       string `json:"label"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
}

// DailyChart projects window stats onto an impressions/clicks series.
func DailyChart(stats WindowStats) []ChartPoint {
	points := make([]ChartPoint, 0, len(stats.Daily))
	for _, d := range stats.Daily {
		points = append(points, ChartPoint{Label: d.Date, Impressions: d.Impressions, Clicks: d.Clicks})
	}

	return points
}

// DayOfWeekChart buckets window stats by weekday name, ordered by first
// appearance in the window. Only the given window is reflected, not a long-run average.
func DayOfWeekChart(stats WindowStats) []ChartPoint {
	points := make([]ChartPoint, 0, 7)
	index := make(map[string]int, 7)
	for _, d := range stats.Daily {
		day, err := time.Parse(DateLayout, d.Date)
		if err != nil {
			continue
		}
		name := day.Weekday().String()
		i, ok := index[name]
		if !ok {
			i = len(points)
			index[name] = i
			points = append(points, ChartPoint{Label: name})
		}
		points[i].Impressions += d.Impressions
		points[i].Clicks += d.Clicks
	}

	return points
}

// Trend is the direction of a revenue comparison.
type Trend string

const (
	TrendUp       Trend = "UP"
	TrendDown     Trend = "DOWN"
	TrendNoChange Trend = "NO_CHANGE"
)

// GrowthTrend compares current with previous. A zero previous period counts
// as 100% growth when current is positive and no change otherwise.
func GrowthTrend(current, previous decimal.Decimal) (float64, Trend) {
	if previous.IsPositive() {
		pct := current.Sub(previous).Mul(hundred).Div(previous).Round(2)
		switch {
		case pct.IsPositive():
			return pct.InexactFloat64(), TrendUp
		case pct.IsNegative():
			return pct.InexactFloat64(), TrendDown
		default:
			return 0, TrendNoChange
		}
	}
	if current.IsPositive() {
		return 100, TrendUp
	}

	return 0, TrendNoChange
}

// RevenueGrowth is the trailing 30 days against the 30 days before.
type RevenueGrowth struct {
	Last30DaysRevenue     decimal.Decimal `json:"last_30_days_revenue"`
	Previous30DaysRevenue decimal.Decimal `json:"previous_30_days_revenue"`
	GrowthPercentage      float64         `json:"growth_percentage"`
	Trend                 Trend           `json:"trend"`
}

// NewRevenueGrowth builds a RevenueGrowth from the two period sums.
func NewRevenueGrowth(current, previous decimal.Decimal) RevenueGrowth {
	pct, trend := GrowthTrend(current, previous)
	return RevenueGrowth{
		Last30DaysRevenue:     current,
		Previous30DaysRevenue: previous,
		GrowthPercentage:      pct,
		Trend:                 trend,
	}
}

// MonthRevenue is the revenue collected in the month starting at Start.
type MonthRevenue struct {
	Start   time.Time
	Revenue decimal.Decimal
}

// MonthlyRevenue is one point of the revenue trend. The first month has no growth.
type MonthlyRevenue struct {
	Month            string          `json:"month"`
	Revenue          decimal.Decimal `json:"revenue"`
	GrowthPercentage *float64        `json:"growth_percentage"`
	Trend            Trend           `json:"trend"`
}

// TrailingMonths returns the first instant of each of the n months ending with now's month, oldest first.
func TrailingMonths(now time.Time, n int, loc *time.Location) []time.Time {
	local := now.In(loc)
	current := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	months := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		months = append(months, current.AddDate(0, -i, 0))
	}

	return months
}

// BuildRevenueTrend adds month-over-month growth to consecutive month sums.
func BuildRevenueTrend(months []MonthRevenue) []MonthlyRevenue {
	trend := make([]MonthlyRevenue, 0, len(months))
	for i, m := range months {
		point := MonthlyRevenue{
			Month:   m.Start.Format("Jan 2006"),
			Revenue: m.Revenue,
			Trend:   TrendNoChange,
		}
		if i > 0 {
			pct, t := GrowthTrend(m.Revenue, months[i-1].Revenue)
			point.GrowthPercentage = &pct
			point.Trend = t
		}
		trend = append(trend, point)
	}

	return trend
}

// TopCampaign is a campaign ranked by impressions on the revenue overview.
type TopCampaign struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Impressions int64           `json:"impressions"`
	Budget      decimal.Decimal `json:"budget"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RevenueOverview is the platform-wide revenue report.
type RevenueOverview struct {
	TotalRevenue   decimal.Decimal  `json:"total_revenue"`
	Growth         RevenueGrowth    `json:"growth"`
	MonthlyRevenue []MonthlyRevenue `json:"monthly_revenue"`
	TopCampaigns   []TopCampaign    `json:"top_campaigns"`
}

// UnknownCity labels events recorded without a city.
const UnknownCity = "Unknown"

// LocationStat is the per-city split of a campaign's impressions and clicks.
type LocationStat struct {
	City        string  `json:"city"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

// MergeLocationStats joins per-city impression and click counts, busiest city first.
func MergeLocationStats(impressions, clicks map[string]int64) []LocationStat {
	cities := make(map[string]*LocationStat, len(impressions))
	get := func(city string) *LocationStat {
		if city == "" {
			city = UnknownCity
		}
		s, ok := cities[city]
		if !ok {
			s = &LocationStat{City: city}
			cities[city] = s
		}
		return s
	}
	for city, n := range impressions {
		get(city).Impressions += n
	}
	for city, n := range clicks {
		get(city).Clicks += n
	}

	stats := make([]LocationStat, 0, len(cities))
	for _, s := range cities {
		s.CTR = RoundedPercent(s.Clicks, s.Impressions)
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Impressions != stats[j].Impressions {
			return stats[i].Impressions > stats[j].Impressions
		}
		return stats[i].City < stats[j].City
	})

	return stats
}

// AdminOverview is the platform head count.
type AdminOverview struct {
	TotalUsers         int64           `json:"total_users"`
	TotalBannedUsers   int64           `json:"total_banned_users"`
	TotalVendors       int64           `json:"total_vendors"`
	TotalAdmins        int64           `json:"total_admins"`
	RunningCampaigns   int64           `json:"running_campaigns"`
	CompletedCampaigns int64           `json:"completed_campaigns"`
	PausedCampaigns    int64           `json:"paused_campaigns"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
}

// VendorSummary totals a vendor's campaigns.
type VendorSummary struct {
	TotalCampaigns     int             `json:"total_campaigns"`
	RunningCampaigns   int             `json:"running_campaigns"`
	PausedCampaigns    int             `json:"paused_campaigns"`
	CompletedCampaigns int             `json:"completed_campaigns"`
	TotalBudget        decimal.Decimal `json:"total_budget"`
	TotalSpending      decimal.Decimal `json:"total_spending"`
	TotalImpressions   int64           `json:"total_impressions"`
	TotalClicks        int64           `json:"total_clicks"`
	TotalConversions   int64           `json:"total_conversions"`
}

// SummarizeVendorCampaigns folds campaigns into a VendorSummary.
func SummarizeVendorCampaigns(campaigns []*Campaign) VendorSummary {
	s := VendorSummary{TotalCampaigns: len(campaigns), TotalBudget: decimal.Zero, TotalSpending: decimal.Zero}
	for _, c := range campaigns {
		switch c.Status {
		case CampaignStatusRunning:
			s.RunningCampaigns++
		case CampaignStatusPaused:
			s.PausedCampaigns++
		case CampaignStatusCompleted:
			s.CompletedCampaigns++
		}
		s.TotalBudget = s.TotalBudget.Add(c.Budget)
		s.TotalSpending = s.TotalSpending.Add(c.CurrentSpending)
		s.TotalImpressions += c.Counters.Impressions
		s.TotalClicks += c.Counters.Clicks
		s.TotalConversions += c.Counters.Conversions
	}

	return s
}

// VendorActivity is one vendor's traffic over a period.
type VendorActivity struct {
	VendorID    uuid.UUID
	Impressions int64
	Clicks      int64
}
