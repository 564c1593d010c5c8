package domain

import (
	"fmt"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
)

// Icon — закрытый набор иконок категорий.
type Icon string

const (
	IconWallet        Icon = "Wallet"
	IconSettings      Icon = "Settings"
	IconFileText      Icon = "FileText"
	IconCreditCard    Icon = "CreditCard"
	IconBuilding      Icon = "Building"
	IconBanknote      Icon = "Banknote"
	IconPiggyBank     Icon = "PiggyBank"
	IconTrendingUp    Icon = "TrendingUp"
	IconShield        Icon = "Shield"
	IconUsers         Icon = "Users"
	IconHome          Icon = "Home"
	IconCar           Icon = "Car"
	IconGraduationCap Icon = "GraduationCap"
	IconHeart         Icon = "Heart"
	IconBriefcase     Icon = "Briefcase"
)

// DefaultIcon используется для новых категорий без явно выбранной иконки.
const DefaultIcon = IconWallet

// iconHandles сопоставляет иконку с именем глифа lucide, которым ее рисует фронтенд.
var iconHandles = map[Icon]string{
	IconWallet:        "wallet",
	IconSettings:      "settings",
	IconFileText:      "file-text",
	IconCreditCard:    "credit-card",
	IconBuilding:      "building",
	IconBanknote:      "banknote",
	IconPiggyBank:     "piggy-bank",
	IconTrendingUp:    "trending-up",
	IconShield:        "shield",
	IconUsers:         "users",
	IconHome:          "home",
	IconCar:           "car",
	IconGraduationCap: "graduation-cap",
	IconHeart:         "heart",
	IconBriefcase:     "briefcase",
}

var iconOrder = []Icon{
	IconWallet, IconSettings, IconFileText, IconCreditCard, IconBuilding,
	IconBanknote, IconPiggyBank, IconTrendingUp, IconShield, IconUsers,
	IconHome, IconCar, IconGraduationCap, IconHeart, IconBriefcase,
}

// Icons возвращает все допустимые иконки в порядке отображения в админке.
func Icons() []Icon {
	out := make([]Icon, len(iconOrder))
	copy(out, iconOrder)
	return out
}

// ParseIcon проверяет имя иконки по списку допустимых.
func ParseIcon(name string) (Icon, error) {
	icon := Icon(name)
	if !icon.Valid() {
		return "", e.Wrap(fmt.Sprintf("icon %q", name), e.ErrInvalidIcon)
	}
	return icon, nil
}

func (i Icon) Valid() bool {
	_, ok := iconHandles[i]
	return ok
}

// Handle возвращает имя глифа для отрисовки.
func (i Icon) Handle() string {
	return iconHandles[i]
}

func (i Icon) String() string {
	return string(i)
}

func (i Icon) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, e.Wrap(fmt.Sprintf("icon %q", string(i)), e.ErrInvalidIcon)
	}
	return []byte(i), nil
}

func (i *Icon) UnmarshalText(text []byte) error {
	icon, err := ParseIcon(string(text))
	if err != nil {
		return err
	}
	*i = icon
	return nil
}
