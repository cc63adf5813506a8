// Package mockdata generates the deterministic sample dataset that stands in
// for the integrations a production deployment would pull from (social
// networks, billing, CRM). All entities derive from a single seed so
// referential fields (client IDs, client names) stay consistent across calls
// and across process restarts with the same seed.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pulsemark/agency-platform/internal/core/domain"
)

// Generator holds the generated dataset. Build it once at startup with New;
// accessors return copies and are safe for concurrent use because the
// underlying slices are never mutated after construction.
type Generator struct {
	clients     []domain.Client
	campaigns   []domain.Campaign
	socialPosts []domain.SocialPost
	blogPosts   []domain.BlogPost
	invoices    []domain.Invoice
	messages    []domain.Message
}

const (
	numClients         = 8
	campaignsPerClient = 3
	postsPerCampaign   = 4
	blogPostsPerClient = 2
	invoicesPerClient  = 6
	messagesPerClient  = 5
)

var clientNames = []string{
	"Northwind Coffee", "Atlas Fitness", "Bluebird Travel", "Crescent Dental",
	"Harbor & Vine", "Peak Outdoors", "Solstice Skincare", "Ironwood Brewing",
}

var industries = []string{
	"Food & Beverage", "Health & Fitness", "Travel", "Healthcare",
	"Hospitality", "Retail", "Beauty", "Food & Beverage",
}

var campaignAdjectives = []string{"Summer", "Holiday", "Launch", "Brand", "Spring", "Flash"}
var campaignNouns = []string{"Awareness", "Promo", "Giveaway", "Stories", "Countdown", "Spotlight"}

var firstNames = []string{"Ava", "Liam", "Maya", "Noah", "Sofia", "Ethan", "Isla", "Mateo"}
var lastNames = []string{"Reyes", "Kim", "Okafor", "Lindqvist", "Moreau", "Tanaka", "Novak", "Delgado"}

var captions = []string{
	"Behind the scenes of our latest shoot",
	"New arrivals just dropped",
	"Meet the team making it all happen",
	"Your weekend plans, sorted",
	"A sneak peek at what's coming next",
	"Thank you for 10k followers!",
}

var blogTitles = []string{
	"Five Trends Shaping This Season",
	"How We Rebuilt Our Brand Voice",
	"A Beginner's Guide to Getting Started",
	"What Our Customers Taught Us This Year",
}

var socialPlatforms = []domain.SocialPlatform{
	domain.PlatformInstagram, domain.PlatformFacebook, domain.PlatformLinkedIn,
	domain.PlatformTikTok, domain.PlatformX,
}

// anchor fixes all generated timestamps so repeated runs with the same seed
// are byte-identical. time.Now would break determinism.
var anchor = time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)

// Anchor returns the fixed timestamp the dataset is generated around.
// Consumers that bucket generated data by date must use this rather than
// time.Now.
func Anchor() time.Time { return anchor }

// New builds the full dataset from seed.
func New(seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	g := &Generator{}

	for i := 0; i < numClients; i++ {
		c := domain.Client{
			ID:           fmt.Sprintf("client_%03d", i+1),
			Name:         clientNames[i%len(clientNames)],
			Industry:     industries[i%len(industries)],
			ContactName:  pick(rng, firstNames) + " " + pick(rng, lastNames),
			ActiveSince:  anchor.AddDate(0, -rng.Intn(36)-1, 0),
			MonthlySpend: float64(rng.Intn(150)+25) * 100,
		}
		c.ContactEmail = emailFor(c.ContactName, c.Name)
		g.clients = append(g.clients, c)

		g.genCampaigns(rng, c)
		g.genBlogPosts(rng, c)
		g.genInvoices(rng, c)
		g.genMessages(rng, c)
	}
	return g
}

func (g *Generator) genCampaigns(rng *rand.Rand, c domain.Client) {
	statuses := []domain.CampaignStatus{
		domain.CampaignActive, domain.CampaignScheduled,
		domain.CampaignDraft, domain.CampaignCompleted,
	}
	for j := 0; j < campaignsPerClient; j++ {
		camp := domain.Campaign{
			ID:         fmt.Sprintf("%s_camp_%02d", c.ID, j+1),
			ClientID:   c.ID,
			ClientName: c.Name,
			Name:       pick(rng, campaignAdjectives) + " " + pick(rng, campaignNouns),
			Status:     statuses[rng.Intn(len(statuses))],
			StartDate:  anchor.AddDate(0, 0, -rng.Intn(60)),
			Budget:     float64(rng.Intn(80)+10) * 100,
			Metrics: domain.CampaignMetrics{
				Impressions: int64(rng.Intn(200000) + 10000),
				Clicks:      int64(rng.Intn(9000) + 500),
				Conversions: int64(rng.Intn(400) + 20),
				Engagement:  float64(rng.Intn(70)+10) / 10,
			},
		}
		camp.EndDate = camp.StartDate.AddDate(0, 1, 0)
		g.campaigns = append(g.campaigns, camp)

		for k := 0; k < postsPerCampaign; k++ {
			g.socialPosts = append(g.socialPosts, domain.SocialPost{
				ID:          fmt.Sprintf("%s_post_%02d", camp.ID, k+1),
				CampaignID:  camp.ID,
				ClientID:    c.ID,
				Platform:    socialPlatforms[rng.Intn(len(socialPlatforms))],
				Caption:     pick(rng, captions),
				ScheduledAt: camp.StartDate.AddDate(0, 0, k*3+rng.Intn(3)),
				Published:   rng.Intn(2) == 0,
				Likes:       int64(rng.Intn(2500)),
				Shares:      int64(rng.Intn(400)),
			})
		}
	}
}

func (g *Generator) genBlogPosts(rng *rand.Rand, c domain.Client) {
	for j := 0; j < blogPostsPerClient; j++ {
		draft := rng.Intn(3) == 0
		bp := domain.BlogPost{
			ID:        fmt.Sprintf("%s_blog_%02d", c.ID, j+1),
			ClientID:  c.ID,
			Title:     pick(rng, blogTitles),
			Author:    pick(rng, firstNames) + " " + pick(rng, lastNames),
			WordCount: rng.Intn(1800) + 400,
			Draft:     draft,
		}
		if !draft {
			bp.PublishedAt = anchor.AddDate(0, 0, -rng.Intn(90))
		}
		g.blogPosts = append(g.blogPosts, bp)
	}
}

func (g *Generator) genInvoices(rng *rand.Rand, c domain.Client) {
	for j := 0; j < invoicesPerClient; j++ {
		issued := anchor.AddDate(0, -j, 0)
		status := domain.InvoicePaid
		switch {
		case j == 0:
			status = domain.InvoiceSent
		case j == 1 && rng.Intn(3) == 0:
			status = domain.InvoiceOverdue
		}
		g.invoices = append(g.invoices, domain.Invoice{
			ID:         fmt.Sprintf("%s_inv_%02d", c.ID, j+1),
			Number:     fmt.Sprintf("INV-%s-%04d", issued.Format("200601"), rng.Intn(9000)+1000),
			ClientID:   c.ID,
			ClientName: c.Name,
			Amount:     c.MonthlySpend + float64(rng.Intn(1000)),
			Currency:   "USD",
			Status:     status,
			IssuedAt:   issued,
			DueAt:      issued.AddDate(0, 0, 30),
		})
	}
}

func (g *Generator) genMessages(rng *rand.Rand, c domain.Client) {
	for j := 0; j < messagesPerClient; j++ {
		g.messages = append(g.messages, domain.Message{
			ID:         fmt.Sprintf("%s_msg_%02d", c.ID, j+1),
			ClientID:   c.ID,
			SenderID:   fmt.Sprintf("user_%03d", rng.Intn(40)+1),
			SenderName: pick(rng, firstNames) + " " + pick(rng, lastNames),
			Body:       pick(rng, captions),
			Read:       j > 1,
			SentAt:     anchor.Add(-time.Duration(rng.Intn(96)) * time.Hour),
		})
	}
}

// Clients returns all generated clients.
func (g *Generator) Clients() []domain.Client {
	return append([]domain.Client(nil), g.clients...)
}

// Campaigns returns campaigns, scoped to clientID when non-empty.
func (g *Generator) Campaigns(clientID string) []domain.Campaign {
	out := make([]domain.Campaign, 0, len(g.campaigns))
	for _, c := range g.campaigns {
		if clientID == "" || c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out
}

// SocialPosts returns social posts, scoped to clientID when non-empty.
func (g *Generator) SocialPosts(clientID string) []domain.SocialPost {
	out := make([]domain.SocialPost, 0, len(g.socialPosts))
	for _, p := range g.socialPosts {
		if clientID == "" || p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

// BlogPosts returns blog posts, scoped to clientID when non-empty.
func (g *Generator) BlogPosts(clientID string) []domain.BlogPost {
	out := make([]domain.BlogPost, 0, len(g.blogPosts))
	for _, p := range g.blogPosts {
		if clientID == "" || p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

// Invoices returns invoices, scoped to clientID when non-empty.
func (g *Generator) Invoices(clientID string) []domain.Invoice {
	out := make([]domain.Invoice, 0, len(g.invoices))
	for _, inv := range g.invoices {
		if clientID == "" || inv.ClientID == clientID {
			out = append(out, inv)
		}
	}
	return out
}

// Messages returns messages, scoped to clientID when non-empty.
func (g *Generator) Messages(clientID string) []domain.Message {
	out := make([]domain.Message, 0, len(g.messages))
	for _, m := range g.messages {
		if clientID == "" || m.ClientID == clientID {
			out = append(out, m)
		}
	}
	return out
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func emailFor(contact, company string) string {
	return fmt.Sprintf("%s@%s.example.com", slug(firstWord(contact)), slug(company))
}

func firstWord(s string) string {
	for i, r := range s {
		if r == ' ' {
			return s[:i]
		}
	}
	return s
}

func slug(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	return string(out)
}
