package api

// Role is the backend-assigned account role.
type Role string

const (
	RoleFarmOwner Role = "FARM_OWNER"
	RoleWorker    Role = "WORKER"
	RoleBuyer     Role = "BUYER"
)

// MilkSession identifies the milking session of a production entry or order.
type MilkSession string

const (
	SessionMorning MilkSession = "MORNING"
	SessionEvening MilkSession = "EVENING"
)

// CattleStatus transitions are enforced by the backend; the client only
// requests them.
type CattleStatus string

const (
	CattleActive CattleStatus = "ACTIVE"
	CattleSick   CattleStatus = "SICK"
	CattleSold   CattleStatus = "SOLD"
)

// OrderStatus is the backend-owned order state machine.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// SubscriptionStatus is the backend-owned subscription state machine.
type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "PENDING"
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionCompleted SubscriptionStatus = "COMPLETED"
)

// User is the authenticated account returned by login and register.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Farm is a backend-owned farm record. AvailableMilk and TodayMilk are
// derived quantities computed server-side; the client never recomputes them.
type Farm struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	PricePerLiter float64 `json:"pricePerLiter"`
	IsSelling     bool    `json:"isSelling"`
	AvailableMilk float64 `json:"availableMilk"`
	TodayMilk     float64 `json:"todayMilk"`
}

// Shed groups cattle within a farm and scopes worker assignments.
type Shed struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	FarmID int64  `json:"farmId"`
}

// Cattle is a single animal. TagID is unique per farm.
type Cattle struct {
	ID     int64        `json:"id"`
	TagID  string       `json:"tagId"`
	Breed  string       `json:"breed"`
	Status CattleStatus `json:"status"`
	ShedID int64        `json:"shedId"`
	FarmID int64        `json:"farmId"`
}

// Worker is a farm worker together with their shed assignments.
type Worker struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	ShedIDs []int64 `json:"shedIds"`
}

// MilkEntry is one recorded milking. Append-only from the client side.
type MilkEntry struct {
	TagID   string      `json:"tagId"`
	Session MilkSession `json:"session"`
	Liters  float64     `json:"liters"`
	Date    string      `json:"date"`
}

// MilkBreakdown is today's production split by session.
type MilkBreakdown struct {
	MorningLiters float64 `json:"morningLiters"`
	EveningLiters float64 `json:"eveningLiters"`
	TotalLiters   float64 `json:"totalLiters"`
}

// ProductionDay is one day in the production history series.
type ProductionDay struct {
	Date   string  `json:"date"`
	Liters float64 `json:"liters"`
}

// Availability is the sellable milk the backend reports for a farm, date and
// session. Authoritative; the client only displays it.
type Availability struct {
	FarmID    int64       `json:"farmId"`
	Date      string      `json:"date"`
	Session   MilkSession `json:"session"`
	Available float64     `json:"available"`
}

// Order is a one-time milk purchase.
type Order struct {
	ID       int64       `json:"id"`
	FarmID   int64       `json:"farmId"`
	BuyerID  int64       `json:"buyerId"`
	Quantity float64     `json:"quantity"`
	Session  MilkSession `json:"session"`
	Date     string      `json:"date"`
	Status   OrderStatus `json:"status"`
}

// Subscription is a recurring milk purchase over a date range.
type Subscription struct {
	ID        int64              `json:"id"`
	FarmID    int64              `json:"farmId"`
	BuyerID   int64              `json:"buyerId"`
	Quantity  float64            `json:"quantity"`
	Session   MilkSession        `json:"session"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
	Status    SubscriptionStatus `json:"status"`
}
