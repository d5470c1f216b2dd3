package codata2002

import (
	"sync"

	"github.com/katalvlaran/codata"
)

// Revision is the CODATA adjustment these values were published in.
const Revision = 2002

var (
	wienDisplacementLawConstant                    = codata.New("Wien displacement law constant", 0.0028977685, 5.1e-09, "m K")
	atomicUnitOf1stHyperpolarizablity              = codata.New("atomic unit of 1st hyperpolarizablity", 3.20636151e-53, 2.8e-60, "C^3 m^3 J^-2")
	atomicUnitOf2ndHyperpolarizablity              = codata.New("atomic unit of 2nd hyperpolarizablity", 6.2353808e-65, 1.1e-71, "C^4 m^4 J^-3")
	atomicUnitOfElectricDipoleMoment               = codata.New("atomic unit of electric dipole moment", 8.47835309e-30, 7.3e-37, "C m")
	atomicUnitOfElectricPolarizablity              = codata.New("atomic unit of electric polarizablity", 1.648777274e-41, 1.6e-49, "C^2 m^2 J^-1")
	atomicUnitOfElectricQuadrupoleMoment           = codata.New("atomic unit of electric quadrupole moment", 4.48655124e-40, 3.9e-47, "C m^2")
	atomicUnitOfMagnDipoleMoment                   = codata.New("atomic unit of magn. dipole moment", 1.8548019e-23, 1.6e-30, "J T^-1")
	atomicUnitOfMagnFluxDensity                    = codata.New("atomic unit of magn. flux density", 235051.742, 0.02, "T")
	deuteronMagnMoment                             = codata.New("deuteron magn. moment", 4.33073482e-27, 3.8e-34, "J T^-1")
	deuteronMagnMomentToBohrMagnetonRatio          = codata.New("deuteron magn. moment to Bohr magneton ratio", 0.0004669754567, 5e-12, "")
	deuteronMagnMomentToNuclearMagnetonRatio       = codata.New("deuteron magn. moment to nuclear magneton ratio", 0.8574382329, 9.2e-09, "")
	deuteronElectronMagnMomentRatio                = codata.New("deuteron-electron magn. moment ratio", -0.0004664345548, 5e-12, "")
	deuteronProtonMagnMomentRatio                  = codata.New("deuteron-proton magn. moment ratio", 0.3070122084, 4.5e-09, "")
	deuteronNeutronMagnMomentRatio                 = codata.New("deuteron-neutron magn. moment ratio", -0.44820652, 1.1e-07, "")
	electronGyromagnRatio                          = codata.New("electron gyromagn. ratio", 1.76085974e+11, 15000, "s^-1 T^-1")
	electronGyromagnRatioOver2Pi                   = codata.New("electron gyromagn. ratio over 2 pi", 28024.9532, 0.0024, "MHz T^-1")
	electronMagnMoment                             = codata.New("electron magn. moment", -9.28476412e-24, 8e-31, "J T^-1")
	electronMagnMomentToBohrMagnetonRatio          = codata.New("electron magn. moment to Bohr magneton ratio", -1.0011596521859, 3.8e-12, "")
	electronMagnMomentToNuclearMagnetonRatio       = codata.New("electron magn. moment to nuclear magneton ratio", -1838.28197107, 8.5e-07, "")
	electronMagnMomentAnomaly                      = codata.New("electron magn. moment anomaly", 0.0011596521859, 3.8e-12, "")
	electronToShieldedProtonMagnMomentRatio        = codata.New("electron to shielded proton magn. moment ratio", -658.2275956, 7.1e-06, "")
	electronToShieldedHelionMagnMomentRatio        = codata.New("electron to shielded helion magn. moment ratio", 864.058255, 1e-05, "")
	electronDeuteronMagnMomentRatio                = codata.New("electron-deuteron magn. moment ratio", -2143.923493, 2.3e-05, "")
	electronMuonMagnMomentRatio                    = codata.New("electron-muon magn. moment ratio", 206.7669894, 5.4e-06, "")
	electronNeutronMagnMomentRatio                 = codata.New("electron-neutron magn. moment ratio", 960.9205, 0.00023, "")
	electronProtonMagnMomentRatio                  = codata.New("electron-proton magn. moment ratio", -658.2106862, 6.6e-06, "")
	magnConstant                                   = codata.New("magn. constant", 1.2566370614e-06, 0, "N A^-2")
	magnFluxQuantum                                = codata.New("magn. flux quantum", 2.06783372e-15, 1.8e-22, "Wb")
	muonMagnMoment                                 = codata.New("muon magn. moment", -4.49044799e-26, 4e-33, "J T^-1")
	muonMagnMomentToBohrMagnetonRatio              = codata.New("muon magn. moment to Bohr magneton ratio", -0.00484197045, 1.3e-10, "")
	muonMagnMomentToNuclearMagnetonRatio           = codata.New("muon magn. moment to nuclear magneton ratio", -8.89059698, 2.3e-07, "")
	muonProtonMagnMomentRatio                      = codata.New("muon-proton magn. moment ratio", -3.183345118, 8.9e-08, "")
	neutronGyromagnRatio                           = codata.New("neutron gyromagn. ratio", 1.83247183e+08, 46, "s^-1 T^-1")
	neutronGyromagnRatioOver2Pi                    = codata.New("neutron gyromagn. ratio over 2 pi", 29.164695, 7.3e-06, "MHz T^-1")
	neutronMagnMoment                              = codata.New("neutron magn. moment", -9.6623645e-27, 2.4e-33, "J T^-1")
	neutronMagnMomentToBohrMagnetonRatio           = codata.New("neutron magn. moment to Bohr magneton ratio", -0.00104187563, 2.5e-10, "")
	neutronMagnMomentToNuclearMagnetonRatio        = codata.New("neutron magn. moment to nuclear magneton ratio", -1.91304273, 4.5e-07, "")
	neutronToShieldedProtonMagnMomentRatio         = codata.New("neutron to shielded proton magn. moment ratio", -0.68499694, 1.6e-07, "")
	neutronElectronMagnMomentRatio                 = codata.New("neutron-electron magn. moment ratio", 0.00104066882, 2.5e-10, "")
	neutronProtonMagnMomentRatio                   = codata.New("neutron-proton magn. moment ratio", -0.68497934, 1.6e-07, "")
	protonGyromagnRatio                            = codata.New("proton gyromagn. ratio", 2.67522205e+08, 23, "s^-1 T^-1")
	protonGyromagnRatioOver2Pi                     = codata.New("proton gyromagn. ratio over 2 pi", 42.5774813, 3.7e-06, "MHz T^-1")
	protonMagnMoment                               = codata.New("proton magn. moment", 1.41060671e-26, 1.2e-33, "J T^-1")
	protonMagnMomentToBohrMagnetonRatio            = codata.New("proton magn. moment to Bohr magneton ratio", 0.001521032206, 1.5e-11, "")
	protonMagnMomentToNuclearMagnetonRatio         = codata.New("proton magn. moment to nuclear magneton ratio", 2.792847351, 2.8e-08, "")
	protonMagnShieldingCorrection                  = codata.New("proton magn. shielding correction", 2.5689e-05, 1.5e-08, "")
	protonNeutronMagnMomentRatio                   = codata.New("proton-neutron magn. moment ratio", -1.45989805, 3.4e-07, "")
	shieldedHelionGyromagnRatio                    = codata.New("shielded helion gyromagn. ratio", 2.0378947e+08, 18, "s^-1 T^-1")
	shieldedHelionGyromagnRatioOver2Pi             = codata.New("shielded helion gyromagn. ratio over 2 pi", 32.4341015, 2.8e-06, "MHz T^-1")
	shieldedHelionMagnMoment                       = codata.New("shielded helion magn. moment", -1.074553024e-26, 9.3e-34, "J T^-1")
	shieldedHelionMagnMomentToBohrMagnetonRatio    = codata.New("shielded helion magn. moment to Bohr magneton ratio", -0.001158671474, 1.4e-11, "")
	shieldedHelionMagnMomentToNuclearMagnetonRatio = codata.New("shielded helion magn. moment to nuclear magneton ratio", -2.127497723, 2.5e-08, "")
	shieldedHelionToProtonMagnMomentRatio          = codata.New("shielded helion to proton magn. moment ratio", -0.761766562, 1.2e-08, "")
	shieldedHelionToShieldedProtonMagnMomentRatio  = codata.New("shielded helion to shielded proton magn. moment ratio", -0.7617861313, 3.3e-09, "")
	shieldedProtonMagnMoment                       = codata.New("shielded proton magn. moment", 1.41057047e-26, 1.2e-33, "J T^-1")
	shieldedProtonMagnMomentToBohrMagnetonRatio    = codata.New("shielded proton magn. moment to Bohr magneton ratio", 0.001520993132, 1.6e-11, "")
	shieldedProtonMagnMomentToNuclearMagnetonRatio = codata.New("shielded proton magn. moment to nuclear magneton ratio", 2.792775604, 3e-08, "")
	latticeSpacingOfSilicon220                     = codata.New("{220} lattice spacing of silicon", 1.920155965e-10, 7e-18, "m")
)

// WienDisplacementLawConstant returns the Wien displacement law constant, in m K.
func WienDisplacementLawConstant() codata.Constant { return wienDisplacementLawConstant }

// AtomicUnitOf1stHyperpolarizablity returns the atomic unit of 1st hyperpolarizablity, in C^3 m^3 J^-2.
func AtomicUnitOf1stHyperpolarizablity() codata.Constant { return atomicUnitOf1stHyperpolarizablity }

// AtomicUnitOf2ndHyperpolarizablity returns the atomic unit of 2nd hyperpolarizablity, in C^4 m^4 J^-3.
func AtomicUnitOf2ndHyperpolarizablity() codata.Constant { return atomicUnitOf2ndHyperpolarizablity }

// AtomicUnitOfElectricDipoleMoment returns the atomic unit of electric dipole moment, in C m.
func AtomicUnitOfElectricDipoleMoment() codata.Constant { return atomicUnitOfElectricDipoleMoment }

// AtomicUnitOfElectricPolarizablity returns the atomic unit of electric polarizablity, in C^2 m^2 J^-1.
func AtomicUnitOfElectricPolarizablity() codata.Constant { return atomicUnitOfElectricPolarizablity }

// AtomicUnitOfElectricQuadrupoleMoment returns the atomic unit of electric quadrupole moment, in C m^2.
func AtomicUnitOfElectricQuadrupoleMoment() codata.Constant { return atomicUnitOfElectricQuadrupoleMoment }

// AtomicUnitOfMagnDipoleMoment returns the atomic unit of magn. dipole moment, in J T^-1.
func AtomicUnitOfMagnDipoleMoment() codata.Constant { return atomicUnitOfMagnDipoleMoment }

// AtomicUnitOfMagnFluxDensity returns the atomic unit of magn. flux density, in T.
func AtomicUnitOfMagnFluxDensity() codata.Constant { return atomicUnitOfMagnFluxDensity }

// DeuteronMagnMoment returns the deuteron magn. moment, in J T^-1.
func DeuteronMagnMoment() codata.Constant { return deuteronMagnMoment }

// DeuteronMagnMomentToBohrMagnetonRatio returns the deuteron magn. moment to Bohr magneton ratio (dimensionless).
func DeuteronMagnMomentToBohrMagnetonRatio() codata.Constant { return deuteronMagnMomentToBohrMagnetonRatio }

// DeuteronMagnMomentToNuclearMagnetonRatio returns the deuteron magn. moment to nuclear magneton ratio (dimensionless).
func DeuteronMagnMomentToNuclearMagnetonRatio() codata.Constant { return deuteronMagnMomentToNuclearMagnetonRatio }

// DeuteronElectronMagnMomentRatio returns the deuteron-electron magn. moment ratio (dimensionless).
func DeuteronElectronMagnMomentRatio() codata.Constant { return deuteronElectronMagnMomentRatio }

// DeuteronProtonMagnMomentRatio returns the deuteron-proton magn. moment ratio (dimensionless).
func DeuteronProtonMagnMomentRatio() codata.Constant { return deuteronProtonMagnMomentRatio }

// DeuteronNeutronMagnMomentRatio returns the deuteron-neutron magn. moment ratio (dimensionless).
func DeuteronNeutronMagnMomentRatio() codata.Constant { return deuteronNeutronMagnMomentRatio }

// ElectronGyromagnRatio returns the electron gyromagn. ratio, in s^-1 T^-1.
func ElectronGyromagnRatio() codata.Constant { return electronGyromagnRatio }

// ElectronGyromagnRatioOver2Pi returns the electron gyromagn. ratio over 2 pi, in MHz T^-1.
func ElectronGyromagnRatioOver2Pi() codata.Constant { return electronGyromagnRatioOver2Pi }

// ElectronMagnMoment returns the electron magn. moment, in J T^-1.
func ElectronMagnMoment() codata.Constant { return electronMagnMoment }

// ElectronMagnMomentToBohrMagnetonRatio returns the electron magn. moment to Bohr magneton ratio (dimensionless).
func ElectronMagnMomentToBohrMagnetonRatio() codata.Constant { return electronMagnMomentToBohrMagnetonRatio }

// ElectronMagnMomentToNuclearMagnetonRatio returns the electron magn. moment to nuclear magneton ratio (dimensionless).
func ElectronMagnMomentToNuclearMagnetonRatio() codata.Constant { return electronMagnMomentToNuclearMagnetonRatio }

// ElectronMagnMomentAnomaly returns the electron magn. moment anomaly (dimensionless).
func ElectronMagnMomentAnomaly() codata.Constant { return electronMagnMomentAnomaly }

// ElectronToShieldedProtonMagnMomentRatio returns the electron to shielded proton magn. moment ratio (dimensionless).
func ElectronToShieldedProtonMagnMomentRatio() codata.Constant { return electronToShieldedProtonMagnMomentRatio }

// ElectronToShieldedHelionMagnMomentRatio returns the electron to shielded helion magn. moment ratio (dimensionless).
func ElectronToShieldedHelionMagnMomentRatio() codata.Constant { return electronToShieldedHelionMagnMomentRatio }

// ElectronDeuteronMagnMomentRatio returns the electron-deuteron magn. moment ratio (dimensionless).
func ElectronDeuteronMagnMomentRatio() codata.Constant { return electronDeuteronMagnMomentRatio }

// ElectronMuonMagnMomentRatio returns the electron-muon magn. moment ratio (dimensionless).
func ElectronMuonMagnMomentRatio() codata.Constant { return electronMuonMagnMomentRatio }

// ElectronNeutronMagnMomentRatio returns the electron-neutron magn. moment ratio (dimensionless).
func ElectronNeutronMagnMomentRatio() codata.Constant { return electronNeutronMagnMomentRatio }

// ElectronProtonMagnMomentRatio returns the electron-proton magn. moment ratio (dimensionless).
func ElectronProtonMagnMomentRatio() codata.Constant { return electronProtonMagnMomentRatio }

// MagnConstant returns the magn. constant, in N A^-2, exact.
func MagnConstant() codata.Constant { return magnConstant }

// MagnFluxQuantum returns the magn. flux quantum, in Wb.
func MagnFluxQuantum() codata.Constant { return magnFluxQuantum }

// MuonMagnMoment returns the muon magn. moment, in J T^-1.
func MuonMagnMoment() codata.Constant { return muonMagnMoment }

// MuonMagnMomentToBohrMagnetonRatio returns the muon magn. moment to Bohr magneton ratio (dimensionless).
func MuonMagnMomentToBohrMagnetonRatio() codata.Constant { return muonMagnMomentToBohrMagnetonRatio }

// MuonMagnMomentToNuclearMagnetonRatio returns the muon magn. moment to nuclear magneton ratio (dimensionless).
func MuonMagnMomentToNuclearMagnetonRatio() codata.Constant { return muonMagnMomentToNuclearMagnetonRatio }

// MuonProtonMagnMomentRatio returns the muon-proton magn. moment ratio (dimensionless).
func MuonProtonMagnMomentRatio() codata.Constant { return muonProtonMagnMomentRatio }

// NeutronGyromagnRatio returns the neutron gyromagn. ratio, in s^-1 T^-1.
func NeutronGyromagnRatio() codata.Constant { return neutronGyromagnRatio }

// NeutronGyromagnRatioOver2Pi returns the neutron gyromagn. ratio over 2 pi, in MHz T^-1.
func NeutronGyromagnRatioOver2Pi() codata.Constant { return neutronGyromagnRatioOver2Pi }

// NeutronMagnMoment returns the neutron magn. moment, in J T^-1.
func NeutronMagnMoment() codata.Constant { return neutronMagnMoment }

// NeutronMagnMomentToBohrMagnetonRatio returns the neutron magn. moment to Bohr magneton ratio (dimensionless).
func NeutronMagnMomentToBohrMagnetonRatio() codata.Constant { return neutronMagnMomentToBohrMagnetonRatio }

// NeutronMagnMomentToNuclearMagnetonRatio returns the neutron magn. moment to nuclear magneton ratio (dimensionless).
func NeutronMagnMomentToNuclearMagnetonRatio() codata.Constant { return neutronMagnMomentToNuclearMagnetonRatio }

// NeutronToShieldedProtonMagnMomentRatio returns the neutron to shielded proton magn. moment ratio (dimensionless).
func NeutronToShieldedProtonMagnMomentRatio() codata.Constant { return neutronToShieldedProtonMagnMomentRatio }

// NeutronElectronMagnMomentRatio returns the neutron-electron magn. moment ratio (dimensionless).
func NeutronElectronMagnMomentRatio() codata.Constant { return neutronElectronMagnMomentRatio }

// NeutronProtonMagnMomentRatio returns the neutron-proton magn. moment ratio (dimensionless).
func NeutronProtonMagnMomentRatio() codata.Constant { return neutronProtonMagnMomentRatio }

// ProtonGyromagnRatio returns the proton gyromagn. ratio, in s^-1 T^-1.
func ProtonGyromagnRatio() codata.Constant { return protonGyromagnRatio }

// ProtonGyromagnRatioOver2Pi returns the proton gyromagn. ratio over 2 pi, in MHz T^-1.
func ProtonGyromagnRatioOver2Pi() codata.Constant { return protonGyromagnRatioOver2Pi }

// ProtonMagnMoment returns the proton magn. moment, in J T^-1.
func ProtonMagnMoment() codata.Constant { return protonMagnMoment }

// ProtonMagnMomentToBohrMagnetonRatio returns the proton magn. moment to Bohr magneton ratio (dimensionless).
func ProtonMagnMomentToBohrMagnetonRatio() codata.Constant { return protonMagnMomentToBohrMagnetonRatio }

// ProtonMagnMomentToNuclearMagnetonRatio returns the proton magn. moment to nuclear magneton ratio (dimensionless).
func ProtonMagnMomentToNuclearMagnetonRatio() codata.Constant { return protonMagnMomentToNuclearMagnetonRatio }

// ProtonMagnShieldingCorrection returns the proton magn. shielding correction (dimensionless).
func ProtonMagnShieldingCorrection() codata.Constant { return protonMagnShieldingCorrection }

// ProtonNeutronMagnMomentRatio returns the proton-neutron magn. moment ratio (dimensionless).
func ProtonNeutronMagnMomentRatio() codata.Constant { return protonNeutronMagnMomentRatio }

// ShieldedHelionGyromagnRatio returns the shielded helion gyromagn. ratio, in s^-1 T^-1.
func ShieldedHelionGyromagnRatio() codata.Constant { return shieldedHelionGyromagnRatio }

// ShieldedHelionGyromagnRatioOver2Pi returns the shielded helion gyromagn. ratio over 2 pi, in MHz T^-1.
func ShieldedHelionGyromagnRatioOver2Pi() codata.Constant { return shieldedHelionGyromagnRatioOver2Pi }

// ShieldedHelionMagnMoment returns the shielded helion magn. moment, in J T^-1.
func ShieldedHelionMagnMoment() codata.Constant { return shieldedHelionMagnMoment }

// ShieldedHelionMagnMomentToBohrMagnetonRatio returns the shielded helion magn. moment to Bohr magneton ratio (dimensionless).
func ShieldedHelionMagnMomentToBohrMagnetonRatio() codata.Constant { return shieldedHelionMagnMomentToBohrMagnetonRatio }

// ShieldedHelionMagnMomentToNuclearMagnetonRatio returns the shielded helion magn. moment to nuclear magneton ratio (dimensionless).
func ShieldedHelionMagnMomentToNuclearMagnetonRatio() codata.Constant { return shieldedHelionMagnMomentToNuclearMagnetonRatio }

// ShieldedHelionToProtonMagnMomentRatio returns the shielded helion to proton magn. moment ratio (dimensionless).
func ShieldedHelionToProtonMagnMomentRatio() codata.Constant { return shieldedHelionToProtonMagnMomentRatio }

// ShieldedHelionToShieldedProtonMagnMomentRatio returns the shielded helion to shielded proton magn. moment ratio (dimensionless).
func ShieldedHelionToShieldedProtonMagnMomentRatio() codata.Constant { return shieldedHelionToShieldedProtonMagnMomentRatio }

// ShieldedProtonMagnMoment returns the shielded proton magn. moment, in J T^-1.
func ShieldedProtonMagnMoment() codata.Constant { return shieldedProtonMagnMoment }

// ShieldedProtonMagnMomentToBohrMagnetonRatio returns the shielded proton magn. moment to Bohr magneton ratio (dimensionless).
func ShieldedProtonMagnMomentToBohrMagnetonRatio() codata.Constant { return shieldedProtonMagnMomentToBohrMagnetonRatio }

// ShieldedProtonMagnMomentToNuclearMagnetonRatio returns the shielded proton magn. moment to nuclear magneton ratio (dimensionless).
func ShieldedProtonMagnMomentToNuclearMagnetonRatio() codata.Constant { return shieldedProtonMagnMomentToNuclearMagnetonRatio }

// LatticeSpacingOfSilicon220 returns the {220} lattice spacing of silicon, in m.
func LatticeSpacingOfSilicon220() codata.Constant { return latticeSpacingOfSilicon220 }

// table is built on first use.
var table = sync.OnceValue(func() *codata.Table {
	return codata.NewTable(Revision,
		wienDisplacementLawConstant,
		atomicUnitOf1stHyperpolarizablity,
		atomicUnitOf2ndHyperpolarizablity,
		atomicUnitOfElectricDipoleMoment,
		atomicUnitOfElectricPolarizablity,
		atomicUnitOfElectricQuadrupoleMoment,
		atomicUnitOfMagnDipoleMoment,
		atomicUnitOfMagnFluxDensity,
		deuteronMagnMoment,
		deuteronMagnMomentToBohrMagnetonRatio,
		deuteronMagnMomentToNuclearMagnetonRatio,
		deuteronElectronMagnMomentRatio,
		deuteronProtonMagnMomentRatio,
		deuteronNeutronMagnMomentRatio,
		electronGyromagnRatio,
		electronGyromagnRatioOver2Pi,
		electronMagnMoment,
		electronMagnMomentToBohrMagnetonRatio,
		electronMagnMomentToNuclearMagnetonRatio,
		electronMagnMomentAnomaly,
		electronToShieldedProtonMagnMomentRatio,
		electronToShieldedHelionMagnMomentRatio,
		electronDeuteronMagnMomentRatio,
		electronMuonMagnMomentRatio,
		electronNeutronMagnMomentRatio,
		electronProtonMagnMomentRatio,
		magnConstant,
		magnFluxQuantum,
		muonMagnMoment,
		muonMagnMomentToBohrMagnetonRatio,
		muonMagnMomentToNuclearMagnetonRatio,
		muonProtonMagnMomentRatio,
		neutronGyromagnRatio,
		neutronGyromagnRatioOver2Pi,
		neutronMagnMoment,
		neutronMagnMomentToBohrMagnetonRatio,
		neutronMagnMomentToNuclearMagnetonRatio,
		neutronToShieldedProtonMagnMomentRatio,
		neutronElectronMagnMomentRatio,
		neutronProtonMagnMomentRatio,
		protonGyromagnRatio,
		protonGyromagnRatioOver2Pi,
		protonMagnMoment,
		protonMagnMomentToBohrMagnetonRatio,
		protonMagnMomentToNuclearMagnetonRatio,
		protonMagnShieldingCorrection,
		protonNeutronMagnMomentRatio,
		shieldedHelionGyromagnRatio,
		shieldedHelionGyromagnRatioOver2Pi,
		shieldedHelionMagnMoment,
		shieldedHelionMagnMomentToBohrMagnetonRatio,
		shieldedHelionMagnMomentToNuclearMagnetonRatio,
		shieldedHelionToProtonMagnMomentRatio,
		shieldedHelionToShieldedProtonMagnMomentRatio,
		shieldedProtonMagnMoment,
		shieldedProtonMagnMomentToBohrMagnetonRatio,
		shieldedProtonMagnMomentToNuclearMagnetonRatio,
		latticeSpacingOfSilicon220,
	)
})

// Table returns every constant of the revision in publication order.
// Every call returns the same read-only table.
func Table() *codata.Table { return table() }

// Lookup finds a constant of this revision by its published name or key.
func Lookup(name string) (codata.Constant, error) {
	return table().Lookup(name)
}
