package model

import (
	"strings"

	"github.com/pkg/errors"
)

// AgeGroup is the demographic bucket used to select physiological parameters.
type AgeGroup string

const (
	AgeGroupInfant   AgeGroup = "infant"
	AgeGroupToddler  AgeGroup = "toddler"
	AgeGroupChild    AgeGroup = "child"
	AgeGroupAdult    AgeGroup = "adult"
	AgeGroupPregnant AgeGroup = "pregnant"
)

// Country selects the population baseline blood lead level.
type Country string

const (
	CountryUS    Country = "us"
	CountryUK    Country = "uk"
	CountryEU    Country = "eu"
	CountryIndia Country = "india"
	CountryChina Country = "china"
	CountryOther Country = "other"
)

// ExposureRoute is the path by which lead enters the body.
type ExposureRoute string

const (
	RouteIngestion  ExposureRoute = "ingestion"
	RouteDermal     ExposureRoute = "dermal"
	RouteInhalation ExposureRoute = "inhalation"
)

// ProductCategory groups catalog products.
type ProductCategory string

const (
	CategoryFood     ProductCategory = "food"
	CategoryBeverage ProductCategory = "beverage"
	CategoryBabyFood ProductCategory = "baby_food"
	CategoryCosmetic ProductCategory = "cosmetic"
	CategoryCustom   ProductCategory = "custom"
)

var (
	ErrInvalidAgeGroup   = errors.New("invalid age group")
	ErrInvalidCountry    = errors.New("invalid country")
	ErrInvalidRoute      = errors.New("invalid exposure route")
	ErrInvalidCategory   = errors.New("invalid product category")
	ErrInvalidLeadUnit   = errors.New("invalid lead unit")
	ErrInvalidBodyWeight = errors.New("invalid body weight")

	AgeGroups = []AgeGroup{
		AgeGroupInfant,
		AgeGroupToddler,
		AgeGroupChild,
		AgeGroupAdult,
		AgeGroupPregnant,
	}

	Countries = []Country{
		CountryUS,
		CountryUK,
		CountryEU,
		CountryIndia,
		CountryChina,
		CountryOther,
	}

	ExposureRoutes = []ExposureRoute{
		RouteIngestion,
		RouteDermal,
		RouteInhalation,
	}

	ProductCategories = []ProductCategory{
		CategoryFood,
		CategoryBeverage,
		CategoryBabyFood,
		CategoryCosmetic,
		CategoryCustom,
	}
)

func parseEnum[T ~string](val string, list []T, sentinel error) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(val)))
	for _, item := range list {
		if item == v {
			return v, nil
		}
	}
	var zero T
	return zero, errors.Wrapf(sentinel, "%q (valid: %s)", val, join(list))
}

func join[T ~string](list []T) string {
	s := make([]string, len(list))
	for i, v := range list {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}

// ParseAgeGroup converts a string to AgeGroup, rejecting values outside the closed set.
func ParseAgeGroup(val string) (AgeGroup, error) {
	return parseEnum(val, AgeGroups, ErrInvalidAgeGroup)
}

// ParseCountry converts a string to Country, rejecting values outside the closed set.
func ParseCountry(val string) (Country, error) {
	return parseEnum(val, Countries, ErrInvalidCountry)
}

// ParseExposureRoute converts a string to ExposureRoute, rejecting values outside the closed set.
func ParseExposureRoute(val string) (ExposureRoute, error) {
	return parseEnum(val, ExposureRoutes, ErrInvalidRoute)
}

// ParseProductCategory converts a string to ProductCategory, rejecting values outside the closed set.
func ParseProductCategory(val string) (ProductCategory, error) {
	return parseEnum(val, ProductCategories, ErrInvalidCategory)
}

// ParseLeadUnit converts a string to LeadUnit. Empty input is not valid here;
// callers treat a missing unit as "no override".
func ParseLeadUnit(val string) (LeadUnit, error) {
	return parseEnum(val, LeadUnits, ErrInvalidLeadUnit)
}

// Valid reports whether a is one of the known age groups.
func (a AgeGroup) Valid() bool { return contains(AgeGroups, a) }

func (c Country) Valid() bool { return contains(Countries, c) }

func (r ExposureRoute) Valid() bool { return contains(ExposureRoutes, r) }

func (c ProductCategory) Valid() bool { return contains(ProductCategories, c) }

func contains[T comparable](list []T, val T) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
