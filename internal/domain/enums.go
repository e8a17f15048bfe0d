package domain

type BlockType string

const (
	BlockSingleChoice BlockType = "single_choice"
	BlockMultiChoice  BlockType = "multi_choice"
	BlockScale        BlockType = "scale"
	BlockFreeText     BlockType = "free_text"
)

type Role string

const (
	RoleTone    Role = "tone"
	RoleThemes  Role = "themes"
	RolePosture Role = "posture"
	RoleVecu    Role = "vecu"
	RoleBesoin  Role = "besoin"
	RoleEnergy  Role = "energy"
	RoleExit    Role = "exit"
	RoleSafety  Role = "safety"
	RoleContext Role = "context"
)

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "faible"
	EnergyMedium EnergyLevel = "moyenne"
	EnergyHigh   EnergyLevel = "haute"
)

type RootCategory string

const (
	RootSortie        RootCategory = "sortie"
	RootFatigue       RootCategory = "fatigue"
	RootFlou          RootCategory = "flou"
	RootProtection    RootCategory = "protection"
	RootEffort        RootCategory = "effort"
	RootClarification RootCategory = "clarification"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeverityElevated Severity = "elevated"
)

type VariantKey string

const (
	VariantMain VariantKey = "main"
	VariantStep VariantKey = "step"
	VariantCalm VariantKey = "calm"
	VariantNorm VariantKey = "norm"
)

// Variants lists the four scenario renderings in canonical order.
var Variants = []VariantKey{VariantMain, VariantStep, VariantCalm, VariantNorm}

// ValidBlockTypes is the canonical set of accepted block type strings.
var ValidBlockTypes = map[string]bool{
	"single_choice": true, "multi_choice": true,
	"scale": true, "free_text": true,
}

// ValidRoles is the canonical set of accepted block role strings.
var ValidRoles = map[string]bool{
	"tone": true, "themes": true, "posture": true, "vecu": true,
	"besoin": true, "energy": true, "exit": true, "safety": true,
	"context": true,
}
