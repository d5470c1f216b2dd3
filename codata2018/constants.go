package codata2018

import (
	"sync"

	"github.com/katalvlaran/codata"
)

// Revision is the CODATA adjustment these values were published in.
const Revision = 2018

var (
	alphaParticleElectronMassRatio                   = codata.New("alpha particle-electron mass ratio", 7294.29954142, 2.4e-07, "")
	alphaParticleMass                                = codata.New("alpha particle mass", 6.6446573357e-27, 2e-36, "kg")
	alphaParticleMassEnergyEquivalent                = codata.New("alpha particle mass energy equivalent", 5.9719201914e-10, 1.8e-19, "J")
	alphaParticleMassEnergyEquivalentInMeV           = codata.New("alpha particle mass energy equivalent in MeV", 3727.3794066, 1.1e-06, "MeV")
	alphaParticleMassInU                             = codata.New("alpha particle mass in u", 4.001506179127, 6.3e-11, "u")
	alphaParticleMolarMass                           = codata.New("alpha particle molar mass", 0.0040015061777, 1.2e-12, "kg mol^-1")
	alphaParticleProtonMassRatio                     = codata.New("alpha particle-proton mass ratio", 3.97259969009, 2.2e-10, "")
	alphaParticleRelativeAtomicMass                  = codata.New("alpha particle relative atomic mass", 4.001506179127, 6.3e-11, "")
	angstromStar                                     = codata.New("Angstrom star", 1.00001495e-10, 9e-17, "m")
	atomicMassConstant                               = codata.New("atomic mass constant", 1.6605390666e-27, 5e-37, "kg")
	atomicMassConstantEnergyEquivalent               = codata.New("atomic mass constant energy equivalent", 1.4924180856e-10, 4.5e-20, "J")
	atomicMassConstantEnergyEquivalentInMeV          = codata.New("atomic mass constant energy equivalent in MeV", 931.49410242, 2.8e-07, "MeV")
	atomicMassUnitElectronVoltRelationship           = codata.New("atomic mass unit-electron volt relationship", 9.3149410242e+08, 0.28, "eV")
	atomicMassUnitHartreeRelationship                = codata.New("atomic mass unit-hartree relationship", 3.4231776874e+07, 0.01, "E_h")
	atomicMassUnitHertzRelationship                  = codata.New("atomic mass unit-hertz relationship", 2.25234271871e+23, 6.8e+13, "Hz")
	atomicMassUnitInverseMeterRelationship           = codata.New("atomic mass unit-inverse meter relationship", 7.5100660209e+14, 230000, "m^-1")
	atomicMassUnitJouleRelationship                  = codata.New("atomic mass unit-joule relationship", 1.4924180856e-10, 4.5e-20, "J")
	atomicMassUnitKelvinRelationship                 = codata.New("atomic mass unit-kelvin relationship", 1.08095401916e+13, 3300, "K")
	atomicMassUnitKilogramRelationship               = codata.New("atomic mass unit-kilogram relationship", 1.6605390666e-27, 5e-37, "kg")
	atomicUnitOf1stHyperpolarizability               = codata.New("atomic unit of 1st hyperpolarizability", 3.2063613061e-53, 1.5e-62, "C^3 m^3 J^-2")
	atomicUnitOf2ndHyperpolarizability               = codata.New("atomic unit of 2nd hyperpolarizability", 6.2353799905e-65, 3.8e-74, "C^4 m^4 J^-3")
	atomicUnitOfAction                               = codata.New("atomic unit of action", 1.054571817e-34, 0, "J s")
	atomicUnitOfCharge                               = codata.New("atomic unit of charge", 1.602176634e-19, 0, "C")
	atomicUnitOfChargeDensity                        = codata.New("atomic unit of charge density", 1.08120238457e+12, 490, "C m^-3")
	atomicUnitOfCurrent                              = codata.New("atomic unit of current", 0.00662361823751, 1.3e-14, "A")
	atomicUnitOfElectricDipoleMom                    = codata.New("atomic unit of electric dipole mom.", 8.4783536255e-30, 1.3e-39, "C m")
	atomicUnitOfElectricField                        = codata.New("atomic unit of electric field", 5.14220674763e+11, 78, "V m^-1")
	atomicUnitOfElectricFieldGradient                = codata.New("atomic unit of electric field gradient", 9.7173624292e+21, 2.9e+12, "V m^-2")
	atomicUnitOfElectricPolarizability               = codata.New("atomic unit of electric polarizability", 1.64877727436e-41, 5e-51, "C^2 m^2 J^-1")
	atomicUnitOfElectricPotential                    = codata.New("atomic unit of electric potential", 27.211386245988, 5.3e-11, "V")
	atomicUnitOfElectricQuadrupoleMom                = codata.New("atomic unit of electric quadrupole mom.", 4.4865515246e-40, 1.4e-49, "C m^2")
	atomicUnitOfEnergy                               = codata.New("atomic unit of energy", 4.3597447222071e-18, 8.5e-30, "J")
	atomicUnitOfForce                                = codata.New("atomic unit of force", 8.2387234983e-08, 1.2e-17, "N")
	atomicUnitOfLength                               = codata.New("atomic unit of length", 5.29177210903e-11, 8e-21, "m")
	atomicUnitOfMagDipoleMom                         = codata.New("atomic unit of mag. dipole mom.", 1.85480201566e-23, 5.6e-33, "J T^-1")
	atomicUnitOfMagFluxDensity                       = codata.New("atomic unit of mag. flux density", 235051.756758, 7.1e-05, "T")
	atomicUnitOfMagnetizability                      = codata.New("atomic unit of magnetizability", 7.8910366008e-29, 4.8e-38, "J T^-2")
	atomicUnitOfMass                                 = codata.New("atomic unit of mass", 9.1093837015e-31, 2.8e-40, "kg")
	atomicUnitOfMomentum                             = codata.New("atomic unit of momentum", 1.9928519141e-24, 3e-34, "kg m s^-1")
	atomicUnitOfPermittivity                         = codata.New("atomic unit of permittivity", 1.11265005545e-10, 1.7e-20, "F m^-1")
	atomicUnitOfTime                                 = codata.New("atomic unit of time", 2.4188843265857e-17, 4.7e-29, "s")
	atomicUnitOfVelocity                             = codata.New("atomic unit of velocity", 2.18769126364e+06, 0.00033, "m s^-1")
	avogadroConstant                                 = codata.New("Avogadro constant", 6.02214076e+23, 0, "mol^-1")
	bohrMagneton                                     = codata.New("Bohr magneton", 9.2740100783e-24, 2.8e-33, "J T^-1")
	bohrMagnetonInEVT                                = codata.New("Bohr magneton in eV/T", 5.788381806e-05, 1.7e-14, "eV T^-1")
	bohrMagnetonInHzT                                = codata.New("Bohr magneton in Hz/T", 1.39962449361e+10, 4.2, "Hz T^-1")
	bohrMagnetonInInverseMeterPerTesla               = codata.New("Bohr magneton in inverse meter per tesla", 46.686447783, 1.4e-08, "m^-1 T^-1")
	bohrMagnetonInKT                                 = codata.New("Bohr magneton in K/T", 0.67171381563, 2e-10, "K T^-1")
	bohrRadius                                       = codata.New("Bohr radius", 5.29177210903e-11, 8e-21, "m")
	boltzmannConstant                                = codata.New("Boltzmann constant", 1.380649e-23, 0, "J K^-1")
	boltzmannConstantInEVK                           = codata.New("Boltzmann constant in eV/K", 8.617333262e-05, 0, "eV K^-1")
	boltzmannConstantInHzK                           = codata.New("Boltzmann constant in Hz/K", 2.083661912e+10, 0, "Hz K^-1")
	boltzmannConstantInInverseMeterPerKelvin         = codata.New("Boltzmann constant in inverse meter per kelvin", 69.50348004, 0, "m^-1 K^-1")
	characteristicImpedanceOfVacuum                  = codata.New("characteristic impedance of vacuum", 376.730313668, 5.7e-08, "ohm")
	classicalElectronRadius                          = codata.New("classical electron radius", 2.8179403262e-15, 1.3e-24, "m")
	comptonWavelength                                = codata.New("Compton wavelength", 2.42631023867e-12, 7.3e-22, "m")
	conductanceQuantum                               = codata.New("conductance quantum", 7.748091729e-05, 0, "S")
	conventionalValueOfAmpere90                      = codata.New("conventional value of ampere-90", 1.00000008887, 0, "A")
	conventionalValueOfCoulomb90                     = codata.New("conventional value of coulomb-90", 1.00000008887, 0, "C")
	conventionalValueOfFarad90                       = codata.New("conventional value of farad-90", 0.9999999822, 0, "F")
	conventionalValueOfHenry90                       = codata.New("conventional value of henry-90", 1.00000001779, 0, "H")
	conventionalValueOfJosephsonConstant             = codata.New("conventional value of Josephson constant", 4.835979e+14, 0, "Hz V^-1")
	conventionalValueOfOhm90                         = codata.New("conventional value of ohm-90", 1.00000001779, 0, "ohm")
	conventionalValueOfVolt90                        = codata.New("conventional value of volt-90", 1.00000010666, 0, "V")
	conventionalValueOfVonKlitzingConstant           = codata.New("conventional value of von Klitzing constant", 25812.807, 0, "ohm")
	conventionalValueOfWatt90                        = codata.New("conventional value of watt-90", 1.00000019553, 0, "W")
	copperXUnit                                      = codata.New("Copper x unit", 1.00207697e-13, 2.8e-20, "m")
	deuteronElectronMagMomRatio                      = codata.New("deuteron-electron mag. mom. ratio", -0.0004664345551, 1.2e-12, "")
	deuteronElectronMassRatio                        = codata.New("deuteron-electron mass ratio", 3670.48296788, 1.3e-07, "")
	deuteronGFactor                                  = codata.New("deuteron g factor", 0.8574382338, 2.2e-09, "")
	deuteronMagMom                                   = codata.New("deuteron mag. mom.", 4.330735094e-27, 1.1e-35, "J T^-1")
	deuteronMagMomToBohrMagnetonRatio                = codata.New("deuteron mag. mom. to Bohr magneton ratio", 0.000466975457, 1.2e-12, "")
	deuteronMagMomToNuclearMagnetonRatio             = codata.New("deuteron mag. mom. to nuclear magneton ratio", 0.8574382338, 2.2e-09, "")
	deuteronMass                                     = codata.New("deuteron mass", 3.3435837724e-27, 1e-36, "kg")
	deuteronMassEnergyEquivalent                     = codata.New("deuteron mass energy equivalent", 3.00506323102e-10, 9.1e-20, "J")
	deuteronMassEnergyEquivalentInMeV                = codata.New("deuteron mass energy equivalent in MeV", 1875.61294257, 5.7e-07, "MeV")
	deuteronMassInU                                  = codata.New("deuteron mass in u", 2.013553212745, 4e-11, "u")
	deuteronMolarMass                                = codata.New("deuteron molar mass", 0.00201355321205, 6.1e-13, "kg mol^-1")
	deuteronNeutronMagMomRatio                       = codata.New("deuteron-neutron mag. mom. ratio", -0.44820653, 1.1e-07, "")
	deuteronProtonMagMomRatio                        = codata.New("deuteron-proton mag. mom. ratio", 0.30701220939, 7.9e-10, "")
	deuteronProtonMassRatio                          = codata.New("deuteron-proton mass ratio", 1.99900750139, 1.1e-10, "")
	deuteronRelativeAtomicMass                       = codata.New("deuteron relative atomic mass", 2.013553212745, 4e-11, "")
	deuteronRmsChargeRadius                          = codata.New("deuteron rms charge radius", 2.12799e-15, 7.4e-19, "m")
	electronChargeToMassQuotient                     = codata.New("electron charge to mass quotient", -1.75882001076e+11, 53, "C kg^-1")
	electronDeuteronMagMomRatio                      = codata.New("electron-deuteron mag. mom. ratio", -2143.9234915, 5.6e-06, "")
	electronDeuteronMassRatio                        = codata.New("electron-deuteron mass ratio", 0.0002724437107462, 9.6e-15, "")
	electronGFactor                                  = codata.New("electron g factor", -2.00231930436256, 3.5e-13, "")
	electronGyromagRatio                             = codata.New("electron gyromag. ratio", 1.76085963023e+11, 53, "s^-1 T^-1")
	electronGyromagRatioInMHzT                       = codata.New("electron gyromag. ratio in MHz/T", 28024.9514242, 8.5e-06, "MHz T^-1")
	electronHelionMassRatio                          = codata.New("electron-helion mass ratio", 0.0001819543074573, 7.9e-15, "")
	electronMagMom                                   = codata.New("electron mag. mom.", -9.2847647043e-24, 2.8e-33, "J T^-1")
	electronMagMomAnomaly                            = codata.New("electron mag. mom. anomaly", 0.00115965218128, 1.8e-13, "")
	electronMagMomToBohrMagnetonRatio                = codata.New("electron mag. mom. to Bohr magneton ratio", -1.00115965218128, 1.8e-13, "")
	electronMagMomToNuclearMagnetonRatio             = codata.New("electron mag. mom. to nuclear magneton ratio", -1838.28197188, 1.1e-07, "")
	electronMass                                     = codata.New("electron mass", 9.1093837015e-31, 2.8e-40, "kg")
	electronMassEnergyEquivalent                     = codata.New("electron mass energy equivalent", 8.1871057769e-14, 2.5e-23, "J")
	electronMassEnergyEquivalentInMeV                = codata.New("electron mass energy equivalent in MeV", 0.51099895, 1.5e-10, "MeV")
	electronMassInU                                  = codata.New("electron mass in u", 0.000548579909065, 1.6e-14, "u")
	electronMolarMass                                = codata.New("electron molar mass", 5.4857990888e-07, 1.7e-16, "kg mol^-1")
	electronMuonMagMomRatio                          = codata.New("electron-muon mag. mom. ratio", 206.7669883, 4.6e-06, "")
	electronMuonMassRatio                            = codata.New("electron-muon mass ratio", 0.00483633169, 1.1e-10, "")
	electronNeutronMagMomRatio                       = codata.New("electron-neutron mag. mom. ratio", 960.9205, 0.00023, "")
	electronNeutronMassRatio                         = codata.New("electron-neutron mass ratio", 0.00054386734424, 2.6e-13, "")
	electronProtonMagMomRatio                        = codata.New("electron-proton mag. mom. ratio", -658.21068789, 2e-07, "")
	electronProtonMassRatio                          = codata.New("electron-proton mass ratio", 0.000544617021487, 3.3e-14, "")
	electronRelativeAtomicMass                       = codata.New("electron relative atomic mass", 0.000548579909065, 1.6e-14, "")
	electronTauMassRatio                             = codata.New("electron-tau mass ratio", 0.000287585, 1.9e-08, "")
	electronToAlphaParticleMassRatio                 = codata.New("electron to alpha particle mass ratio", 0.0001370933554787, 4.5e-15, "")
	electronToShieldedHelionMagMomRatio              = codata.New("electron to shielded helion mag. mom. ratio", 864.058257, 1e-05, "")
	electronToShieldedProtonMagMomRatio              = codata.New("electron to shielded proton mag. mom. ratio", -658.2275971, 7.2e-06, "")
	electronTritonMassRatio                          = codata.New("electron-triton mass ratio", 0.0001819200062251, 9e-15, "")
	electronVolt                                     = codata.New("electron volt", 1.602176634e-19, 0, "J")
	electronVoltAtomicMassUnitRelationship           = codata.New("electron volt-atomic mass unit relationship", 1.07354410233e-09, 3.2e-19, "u")
	electronVoltHartreeRelationship                  = codata.New("electron volt-hartree relationship", 0.036749322175655, 7.1e-14, "E_h")
	electronVoltHertzRelationship                    = codata.New("electron volt-hertz relationship", 2.417989242e+14, 0, "Hz")
	electronVoltInverseMeterRelationship             = codata.New("electron volt-inverse meter relationship", 806554.3937, 0, "m^-1")
	electronVoltJouleRelationship                    = codata.New("electron volt-joule relationship", 1.602176634e-19, 0, "J")
	electronVoltKelvinRelationship                   = codata.New("electron volt-kelvin relationship", 11604.51812, 0, "K")
	electronVoltKilogramRelationship                 = codata.New("electron volt-kilogram relationship", 1.782661921e-36, 0, "kg")
	elementaryCharge                                 = codata.New("elementary charge", 1.602176634e-19, 0, "C")
	elementaryChargeOverHBar                         = codata.New("elementary charge over h-bar", 1.519267447e+15, 0, "A J^-1")
	faradayConstant                                  = codata.New("Faraday constant", 96485.33212, 0, "C mol^-1")
	fermiCouplingConstant                            = codata.New("Fermi coupling constant", 1.1663787e-05, 6e-12, "GeV^-2")
	fineStructureConstant                            = codata.New("fine-structure constant", 0.0072973525693, 1.1e-12, "")
	firstRadiationConstant                           = codata.New("first radiation constant", 3.741771852e-16, 0, "W m^2")
	firstRadiationConstantForSpectralRadiance        = codata.New("first radiation constant for spectral radiance", 1.191042972e-16, 0, "W m^2 sr^-1")
	hartreeAtomicMassUnitRelationship                = codata.New("hartree-atomic mass unit relationship", 2.92126232205e-08, 8.8e-18, "u")
	hartreeElectronVoltRelationship                  = codata.New("hartree-electron volt relationship", 27.211386245988, 5.3e-11, "eV")
	hartreeEnergy                                    = codata.New("Hartree energy", 4.3597447222071e-18, 8.5e-30, "J")
	hartreeEnergyInEV                                = codata.New("Hartree energy in eV", 27.211386245988, 5.3e-11, "eV")
	hartreeHertzRelationship                         = codata.New("hartree-hertz relationship", 6.579683920502e+15, 13000, "Hz")
	hartreeInverseMeterRelationship                  = codata.New("hartree-inverse meter relationship", 2.194746313632e+07, 4.3e-05, "m^-1")
	hartreeJouleRelationship                         = codata.New("hartree-joule relationship", 4.3597447222071e-18, 8.5e-30, "J")
	hartreeKelvinRelationship                        = codata.New("hartree-kelvin relationship", 315775.02480407, 6.1e-07, "K")
	hartreeKilogramRelationship                      = codata.New("hartree-kilogram relationship", 4.8508702095432e-35, 9.4e-47, "kg")
	helionElectronMassRatio                          = codata.New("helion-electron mass ratio", 5495.88528007, 2.4e-07, "")
	helionGFactor                                    = codata.New("helion g factor", -4.255250615, 5e-08, "")
	helionMagMom                                     = codata.New("helion mag. mom.", -1.074617532e-26, 1.3e-34, "J T^-1")
	helionMagMomToBohrMagnetonRatio                  = codata.New("helion mag. mom. to Bohr magneton ratio", -0.001158740958, 1.4e-11, "")
	helionMagMomToNuclearMagnetonRatio               = codata.New("helion mag. mom. to nuclear magneton ratio", -2.127625307, 2.5e-08, "")
	helionMass                                       = codata.New("helion mass", 5.0064127796e-27, 1.5e-36, "kg")
	helionMassEnergyEquivalent                       = codata.New("helion mass energy equivalent", 4.4995394125e-10, 1.4e-19, "J")
	helionMassEnergyEquivalentInMeV                  = codata.New("helion mass energy equivalent in MeV", 2808.39160743, 8.5e-07, "MeV")
	helionMassInU                                    = codata.New("helion mass in u", 3.014932247175, 9.7e-11, "u")
	helionMolarMass                                  = codata.New("helion molar mass", 0.00301493224613, 9.1e-13, "kg mol^-1")
	helionProtonMassRatio                            = codata.New("helion-proton mass ratio", 2.99315267167, 1.3e-10, "")
	helionRelativeAtomicMass                         = codata.New("helion relative atomic mass", 3.014932247175, 9.7e-11, "")
	helionShieldingShift                             = codata.New("helion shielding shift", 5.996743e-05, 1e-10, "")
	hertzAtomicMassUnitRelationship                  = codata.New("hertz-atomic mass unit relationship", 4.4398216652e-24, 1.3e-33, "u")
	hertzElectronVoltRelationship                    = codata.New("hertz-electron volt relationship", 4.135667696e-15, 0, "eV")
	hertzHartreeRelationship                         = codata.New("hertz-hartree relationship", 1.519829846057e-16, 2.9e-28, "E_h")
	hertzInverseMeterRelationship                    = codata.New("hertz-inverse meter relationship", 3.335640951e-09, 0, "m^-1")
	hertzJouleRelationship                           = codata.New("hertz-joule relationship", 6.62607015e-34, 0, "J")
	hertzKelvinRelationship                          = codata.New("hertz-kelvin relationship", 4.799243073e-11, 0, "K")
	hertzKilogramRelationship                        = codata.New("hertz-kilogram relationship", 7.372497323e-51, 0, "kg")
	hyperfineTransitionFrequencyOfCs133              = codata.New("hyperfine transition frequency of Cs-133", 9.19263177e+09, 0, "Hz")
	inverseFineStructureConstant                     = codata.New("inverse fine-structure constant", 137.035999084, 2.1e-08, "")
	inverseMeterAtomicMassUnitRelationship           = codata.New("inverse meter-atomic mass unit relationship", 1.3310250501e-15, 4e-25, "u")
	inverseMeterElectronVoltRelationship             = codata.New("inverse meter-electron volt relationship", 1.239841984e-06, 0, "eV")
	inverseMeterHartreeRelationship                  = codata.New("inverse meter-hartree relationship", 4.556335252912e-08, 8.8e-20, "E_h")
	inverseMeterHertzRelationship                    = codata.New("inverse meter-hertz relationship", 2.99792458e+08, 0, "Hz")
	inverseMeterJouleRelationship                    = codata.New("inverse meter-joule relationship", 1.986445857e-25, 0, "J")
	inverseMeterKelvinRelationship                   = codata.New("inverse meter-kelvin relationship", 0.01438776877, 0, "K")
	inverseMeterKilogramRelationship                 = codata.New("inverse meter-kilogram relationship", 2.210219094e-42, 0, "kg")
	inverseOfConductanceQuantum                      = codata.New("inverse of conductance quantum", 12906.40372, 0, "ohm")
	josephsonConstant                                = codata.New("Josephson constant", 4.835978484e+14, 0, "Hz V^-1")
	jouleAtomicMassUnitRelationship                  = codata.New("joule-atomic mass unit relationship", 6.7005352565e+09, 2, "u")
	jouleElectronVoltRelationship                    = codata.New("joule-electron volt relationship", 6.241509074e+18, 0, "eV")
	jouleHartreeRelationship                         = codata.New("joule-hartree relationship", 2.2937122783963e+17, 450000, "E_h")
	jouleHertzRelationship                           = codata.New("joule-hertz relationship", 1.509190179e+33, 0, "Hz")
	jouleInverseMeterRelationship                    = codata.New("joule-inverse meter relationship", 5.034116567e+24, 0, "m^-1")
	jouleKelvinRelationship                          = codata.New("joule-kelvin relationship", 7.242970516e+22, 0, "K")
	jouleKilogramRelationship                        = codata.New("joule-kilogram relationship", 1.112650056e-17, 0, "kg")
	kelvinAtomicMassUnitRelationship                 = codata.New("kelvin-atomic mass unit relationship", 9.2510873014e-14, 2.8e-23, "u")
	kelvinElectronVoltRelationship                   = codata.New("kelvin-electron volt relationship", 8.617333262e-05, 0, "eV")
	kelvinHartreeRelationship                        = codata.New("kelvin-hartree relationship", 3.1668115634556e-06, 6.1e-18, "E_h")
	kelvinHertzRelationship                          = codata.New("kelvin-hertz relationship", 2.083661912e+10, 0, "Hz")
	kelvinInverseMeterRelationship                   = codata.New("kelvin-inverse meter relationship", 69.50348004, 0, "m^-1")
	kelvinJouleRelationship                          = codata.New("kelvin-joule relationship", 1.380649e-23, 0, "J")
	kelvinKilogramRelationship                       = codata.New("kelvin-kilogram relationship", 1.536179187e-40, 0, "kg")
	kilogramAtomicMassUnitRelationship               = codata.New("kilogram-atomic mass unit relationship", 6.0221407621e+26, 1.8e+17, "u")
	kilogramElectronVoltRelationship                 = codata.New("kilogram-electron volt relationship", 5.609588603e+35, 0, "eV")
	kilogramHartreeRelationship                      = codata.New("kilogram-hartree relationship", 2.0614857887409e+34, 4e+22, "E_h")
	kilogramHertzRelationship                        = codata.New("kilogram-hertz relationship", 1.356392489e+50, 0, "Hz")
	kilogramInverseMeterRelationship                 = codata.New("kilogram-inverse meter relationship", 4.524438335e+41, 0, "m^-1")
	kilogramJouleRelationship                        = codata.New("kilogram-joule relationship", 8.987551787e+16, 0, "J")
	kilogramKelvinRelationship                       = codata.New("kilogram-kelvin relationship", 6.50965726e+39, 0, "K")
	latticeParameterOfSilicon                        = codata.New("lattice parameter of silicon", 5.431020511e-10, 8.9e-18, "m")
	latticeSpacingOfIdealSi220                       = codata.New("lattice spacing of ideal Si (220)", 1.920155716e-10, 3.2e-18, "m")
	loschmidtConstant27315K100KPa                    = codata.New("Loschmidt constant (273.15 K, 100 kPa)", 2.651645804e+25, 0, "m^-3")
	loschmidtConstant27315K101325KPa                 = codata.New("Loschmidt constant (273.15 K, 101.325 kPa)", 2.686780111e+25, 0, "m^-3")
	luminousEfficacy                                 = codata.New("luminous efficacy", 683, 0, "lm W^-1")
	magFluxQuantum                                   = codata.New("mag. flux quantum", 2.067833848e-15, 0, "Wb")
	molarGasConstant                                 = codata.New("molar gas constant", 8.314462618, 0, "J mol^-1 K^-1")
	molarMassConstant                                = codata.New("molar mass constant", 0.00099999999965, 3e-13, "kg mol^-1")
	molarMassOfCarbon12                              = codata.New("molar mass of carbon-12", 0.0119999999958, 3.6e-12, "kg mol^-1")
	molarPlanckConstant                              = codata.New("molar Planck constant", 3.990312712e-10, 0, "J s mol^-1")
	molarVolumeOfIdealGas27315K100KPa                = codata.New("molar volume of ideal gas (273.15 K, 100 kPa)", 0.02271095464, 0, "m^3 mol^-1")
	molarVolumeOfIdealGas27315K101325KPa             = codata.New("molar volume of ideal gas (273.15 K, 101.325 kPa)", 0.02241396954, 0, "m^3 mol^-1")
	molarVolumeOfSilicon                             = codata.New("molar volume of silicon", 1.205883199e-05, 6e-13, "m^3 mol^-1")
	molybdenumXUnit                                  = codata.New("Molybdenum x unit", 1.00209952e-13, 5.3e-20, "m")
	muonComptonWavelength                            = codata.New("muon Compton wavelength", 1.17344411e-14, 2.6e-22, "m")
	muonElectronMassRatio                            = codata.New("muon-electron mass ratio", 206.768283, 4.6e-06, "")
	muonGFactor                                      = codata.New("muon g factor", -2.0023318418, 1.3e-09, "")
	muonMagMom                                       = codata.New("muon mag. mom.", -4.4904483e-26, 1e-33, "J T^-1")
	muonMagMomAnomaly                                = codata.New("muon mag. mom. anomaly", 0.00116592089, 6.3e-10, "")
	muonMagMomToBohrMagnetonRatio                    = codata.New("muon mag. mom. to Bohr magneton ratio", -0.00484197047, 1.1e-10, "")
	muonMagMomToNuclearMagnetonRatio                 = codata.New("muon mag. mom. to nuclear magneton ratio", -8.89059703, 2e-07, "")
	muonMass                                         = codata.New("muon mass", 1.883531627e-28, 4.2e-36, "kg")
	muonMassEnergyEquivalent                         = codata.New("muon mass energy equivalent", 1.692833804e-11, 3.8e-19, "J")
	muonMassEnergyEquivalentInMeV                    = codata.New("muon mass energy equivalent in MeV", 105.6583755, 2.3e-06, "MeV")
	muonMassInU                                      = codata.New("muon mass in u", 0.1134289259, 2.5e-09, "u")
	muonMolarMass                                    = codata.New("muon molar mass", 0.0001134289259, 2.5e-12, "kg mol^-1")
	muonNeutronMassRatio                             = codata.New("muon-neutron mass ratio", 0.112454517, 2.5e-09, "")
	muonProtonMagMomRatio                            = codata.New("muon-proton mag. mom. ratio", -3.183345142, 7.1e-08, "")
	muonProtonMassRatio                              = codata.New("muon-proton mass ratio", 0.1126095264, 2.5e-09, "")
	muonTauMassRatio                                 = codata.New("muon-tau mass ratio", 0.0594635, 4e-06, "")
	naturalUnitOfAction                              = codata.New("natural unit of action", 1.054571817e-34, 0, "J s")
	naturalUnitOfActionInEVS                         = codata.New("natural unit of action in eV s", 6.582119569e-16, 0, "eV s")
	naturalUnitOfEnergy                              = codata.New("natural unit of energy", 8.1871057769e-14, 2.5e-23, "J")
	naturalUnitOfEnergyInMeV                         = codata.New("natural unit of energy in MeV", 0.51099895, 1.5e-10, "MeV")
	naturalUnitOfLength                              = codata.New("natural unit of length", 3.8615926796e-13, 1.2e-22, "m")
	naturalUnitOfMass                                = codata.New("natural unit of mass", 9.1093837015e-31, 2.8e-40, "kg")
	naturalUnitOfMomentum                            = codata.New("natural unit of momentum", 2.73092453075e-22, 8.2e-32, "kg m s^-1")
	naturalUnitOfMomentumInMeVC                      = codata.New("natural unit of momentum in MeV/c", 0.51099895, 1.5e-10, "MeV/c")
	naturalUnitOfTime                                = codata.New("natural unit of time", 1.28808866819e-21, 3.9e-31, "s")
	naturalUnitOfVelocity                            = codata.New("natural unit of velocity", 2.99792458e+08, 0, "m s^-1")
	neutronComptonWavelength                         = codata.New("neutron Compton wavelength", 1.31959090581e-15, 7.5e-25, "m")
	neutronElectronMagMomRatio                       = codata.New("neutron-electron mag. mom. ratio", 0.00104066882, 2.5e-10, "")
	neutronElectronMassRatio                         = codata.New("neutron-electron mass ratio", 1838.68366173, 8.9e-07, "")
	neutronGFactor                                   = codata.New("neutron g factor", -3.82608545, 9e-07, "")
	neutronGyromagRatio                              = codata.New("neutron gyromag. ratio", 1.83247171e+08, 43, "s^-1 T^-1")
	neutronGyromagRatioInMHzT                        = codata.New("neutron gyromag. ratio in MHz/T", 29.1646931, 6.9e-06, "MHz T^-1")
	neutronMagMom                                    = codata.New("neutron mag. mom.", -9.6623651e-27, 2.3e-33, "J T^-1")
	neutronMagMomToBohrMagnetonRatio                 = codata.New("neutron mag. mom. to Bohr magneton ratio", -0.00104187563, 2.5e-10, "")
	neutronMagMomToNuclearMagnetonRatio              = codata.New("neutron mag. mom. to nuclear magneton ratio", -1.91304273, 4.5e-07, "")
	neutronMass                                      = codata.New("neutron mass", 1.67492749804e-27, 9.5e-37, "kg")
	neutronMassEnergyEquivalent                      = codata.New("neutron mass energy equivalent", 1.50534976287e-10, 8.6e-20, "J")
	neutronMassEnergyEquivalentInMeV                 = codata.New("neutron mass energy equivalent in MeV", 939.56542052, 5.4e-07, "MeV")
	neutronMassInU                                   = codata.New("neutron mass in u", 1.00866491595, 4.9e-10, "u")
	neutronMolarMass                                 = codata.New("neutron molar mass", 0.0010086649156, 5.7e-13, "kg mol^-1")
	neutronMuonMassRatio                             = codata.New("neutron-muon mass ratio", 8.89248406, 2e-07, "")
	neutronProtonMagMomRatio                         = codata.New("neutron-proton mag. mom. ratio", -0.68497934, 1.6e-07, "")
	neutronProtonMassDifference                      = codata.New("neutron-proton mass difference", 2.30557435e-30, 8.2e-37, "kg")
	neutronProtonMassDifferenceEnergyEquivalent      = codata.New("neutron-proton mass difference energy equivalent", 2.07214689e-13, 7.4e-20, "J")
	neutronProtonMassDifferenceEnergyEquivalentInMeV = codata.New("neutron-proton mass difference energy equivalent in MeV", 1.29333236, 4.6e-07, "MeV")
	neutronProtonMassDifferenceInU                   = codata.New("neutron-proton mass difference in u", 0.00138844933, 4.9e-10, "u")
	neutronProtonMassRatio                           = codata.New("neutron-proton mass ratio", 1.00137841931, 4.9e-10, "")
	neutronRelativeAtomicMass                        = codata.New("neutron relative atomic mass", 1.00866491595, 4.9e-10, "")
	neutronTauMassRatio                              = codata.New("neutron-tau mass ratio", 0.528779, 3.6e-05, "")
	neutronToShieldedProtonMagMomRatio               = codata.New("neutron to shielded proton mag. mom. ratio", -0.68499694, 1.6e-07, "")
	newtonianConstantOfGravitation                   = codata.New("Newtonian constant of gravitation", 6.6743e-11, 1.5e-15, "m^3 kg^-1 s^-2")
	newtonianConstantOfGravitationOverHBarC          = codata.New("Newtonian constant of gravitation over h-bar c", 6.70883e-39, 1.5e-43, "(GeV/c^2)^-2")
	nuclearMagneton                                  = codata.New("nuclear magneton", 5.0507837461e-27, 1.5e-36, "J T^-1")
	nuclearMagnetonInEVT                             = codata.New("nuclear magneton in eV/T", 3.15245125844e-08, 9.6e-18, "eV T^-1")
	nuclearMagnetonInInverseMeterPerTesla            = codata.New("nuclear magneton in inverse meter per tesla", 0.0254262341353, 7.8e-12, "m^-1 T^-1")
	nuclearMagnetonInKT                              = codata.New("nuclear magneton in K/T", 0.00036582677756, 1.1e-13, "K T^-1")
	nuclearMagnetonInMHzT                            = codata.New("nuclear magneton in MHz/T", 7.6225932291, 2.3e-09, "MHz T^-1")
	planckConstant                                   = codata.New("Planck constant", 6.62607015e-34, 0, "J s")
	planckConstantInEVHz                             = codata.New("Planck constant in eV/Hz", 4.135667696e-15, 0, "eV Hz^-1")
	planckLength                                     = codata.New("Planck length", 1.616255e-35, 1.8e-40, "m")
	planckMass                                       = codata.New("Planck mass", 2.176434e-08, 2.4e-13, "kg")
	planckMassEnergyEquivalentInGeV                  = codata.New("Planck mass energy equivalent in GeV", 1.22089e+19, 1.4e+14, "GeV")
	planckTemperature                                = codata.New("Planck temperature", 1.416784e+32, 1.6e+27, "K")
	planckTime                                       = codata.New("Planck time", 5.391247e-44, 6e-49, "s")
	protonChargeToMassQuotient                       = codata.New("proton charge to mass quotient", 9.578833156e+07, 0.029, "C kg^-1")
	protonComptonWavelength                          = codata.New("proton Compton wavelength", 1.32140985539e-15, 4e-25, "m")
	protonElectronMassRatio                          = codata.New("proton-electron mass ratio", 1836.15267343, 1.1e-07, "")
	protonGFactor                                    = codata.New("proton g factor", 5.5856946893, 1.6e-09, "")
	protonGyromagRatio                               = codata.New("proton gyromag. ratio", 2.6752218744e+08, 0.11, "s^-1 T^-1")
	protonGyromagRatioInMHzT                         = codata.New("proton gyromag. ratio in MHz/T", 42.577478518, 1.8e-08, "MHz T^-1")
	protonMagMom                                     = codata.New("proton mag. mom.", 1.41060679736e-26, 6e-36, "J T^-1")
	protonMagMomToBohrMagnetonRatio                  = codata.New("proton mag. mom. to Bohr magneton ratio", 0.0015210322023, 4.6e-13, "")
	protonMagMomToNuclearMagnetonRatio               = codata.New("proton mag. mom. to nuclear magneton ratio", 2.79284734463, 8.2e-10, "")
	protonMagShieldingCorrection                     = codata.New("proton mag. shielding correction", 2.5689e-05, 1.1e-08, "")
	protonMass                                       = codata.New("proton mass", 1.67262192369e-27, 5.1e-37, "kg")
	protonMassEnergyEquivalent                       = codata.New("proton mass energy equivalent", 1.50327761598e-10, 4.6e-20, "J")
	protonMassEnergyEquivalentInMeV                  = codata.New("proton mass energy equivalent in MeV", 938.27208816, 2.9e-07, "MeV")
	protonMassInU                                    = codata.New("proton mass in u", 1.007276466621, 5.3e-11, "u")
	protonMolarMass                                  = codata.New("proton molar mass", 0.00100727646627, 3.1e-13, "kg mol^-1")
	protonMuonMassRatio                              = codata.New("proton-muon mass ratio", 8.88024337, 2e-07, "")
	protonNeutronMagMomRatio                         = codata.New("proton-neutron mag. mom. ratio", -1.45989805, 3.4e-07, "")
	protonNeutronMassRatio                           = codata.New("proton-neutron mass ratio", 0.99862347812, 4.9e-10, "")
	protonRelativeAtomicMass                         = codata.New("proton relative atomic mass", 1.007276466621, 5.3e-11, "")
	protonRmsChargeRadius                            = codata.New("proton rms charge radius", 8.414e-16, 1.9e-18, "m")
	protonTauMassRatio                               = codata.New("proton-tau mass ratio", 0.528051, 3.6e-05, "")
	quantumOfCirculation                             = codata.New("quantum of circulation", 0.00036369475516, 1.1e-13, "m^2 s^-1")
	quantumOfCirculationTimes2                       = codata.New("quantum of circulation times 2", 0.00072738951032, 2.2e-13, "m^2 s^-1")
	reducedComptonWavelength                         = codata.New("reduced Compton wavelength", 3.8615926796e-13, 1.2e-22, "m")
	reducedMuonComptonWavelength                     = codata.New("reduced muon Compton wavelength", 1.867594306e-15, 4.2e-23, "m")
	reducedNeutronComptonWavelength                  = codata.New("reduced neutron Compton wavelength", 2.1001941552e-16, 1.2e-25, "m")
	reducedPlanckConstant                            = codata.New("reduced Planck constant", 1.054571817e-34, 0, "J s")
	reducedPlanckConstantInEVS                       = codata.New("reduced Planck constant in eV s", 6.582119569e-16, 0, "eV s")
	reducedPlanckConstantTimesCInMeVFm               = codata.New("reduced Planck constant times c in MeV fm", 197.3269804, 0, "MeV fm")
	reducedProtonComptonWavelength                   = codata.New("reduced proton Compton wavelength", 2.10308910336e-16, 6.4e-26, "m")
	reducedTauComptonWavelength                      = codata.New("reduced tau Compton wavelength", 1.110538e-16, 7.5e-21, "m")
	rydbergConstant                                  = codata.New("Rydberg constant", 1.097373156816e+07, 2.1e-05, "m^-1")
	rydbergConstantTimesCInHz                        = codata.New("Rydberg constant times c in Hz", 3.2898419602508e+15, 6400, "Hz")
	rydbergConstantTimesHcInEV                       = codata.New("Rydberg constant times hc in eV", 13.605693122994, 2.6e-11, "eV")
	rydbergConstantTimesHcInJ                        = codata.New("Rydberg constant times hc in J", 2.1798723611035e-18, 4.2e-30, "J")
	sackurTetrodeConstant1K100KPa                    = codata.New("Sackur-Tetrode constant (1 K, 100 kPa)", -1.15170753706, 4.5e-10, "")
	sackurTetrodeConstant1K101325KPa                 = codata.New("Sackur-Tetrode constant (1 K, 101.325 kPa)", -1.16487052358, 4.5e-10, "")
	secondRadiationConstant                          = codata.New("second radiation constant", 0.01438776877, 0, "m K")
	shieldedHelionGyromagRatio                       = codata.New("shielded helion gyromag. ratio", 2.037894569e+08, 2.4, "s^-1 T^-1")
	shieldedHelionGyromagRatioInMHzT                 = codata.New("shielded helion gyromag. ratio in MHz/T", 32.43409942, 3.8e-07, "MHz T^-1")
	shieldedHelionMagMom                             = codata.New("shielded helion mag. mom.", -1.07455309e-26, 1.3e-34, "J T^-1")
	shieldedHelionMagMomToBohrMagnetonRatio          = codata.New("shielded helion mag. mom. to Bohr magneton ratio", -0.001158671471, 1.4e-11, "")
	shieldedHelionMagMomToNuclearMagnetonRatio       = codata.New("shielded helion mag. mom. to nuclear magneton ratio", -2.127497719, 2.5e-08, "")
	shieldedHelionToProtonMagMomRatio                = codata.New("shielded helion to proton mag. mom. ratio", -0.7617665618, 8.9e-09, "")
	shieldedHelionToShieldedProtonMagMomRatio        = codata.New("shielded helion to shielded proton mag. mom. ratio", -0.7617861313, 3.3e-09, "")
	shieldedProtonGyromagRatio                       = codata.New("shielded proton gyromag. ratio", 2.675153151e+08, 2.9, "s^-1 T^-1")
	shieldedProtonGyromagRatioInMHzT                 = codata.New("shielded proton gyromag. ratio in MHz/T", 42.57638474, 4.6e-07, "MHz T^-1")
	shieldedProtonMagMom                             = codata.New("shielded proton mag. mom.", 1.41057056e-26, 1.5e-34, "J T^-1")
	shieldedProtonMagMomToBohrMagnetonRatio          = codata.New("shielded proton mag. mom. to Bohr magneton ratio", 0.001520993128, 1.7e-11, "")
	shieldedProtonMagMomToNuclearMagnetonRatio       = codata.New("shielded proton mag. mom. to nuclear magneton ratio", 2.792775599, 3e-08, "")
	shieldingDifferenceOfDAndPInHD                   = codata.New("shielding difference of d and p in HD", 2.02e-08, 2e-11, "")
	shieldingDifferenceOfTAndPInHT                   = codata.New("shielding difference of t and p in HT", 2.414e-08, 2e-11, "")
	speedOfLightInVacuum                             = codata.New("speed of light in vacuum", 2.99792458e+08, 0, "m s^-1")
	standardAccelerationOfGravity                    = codata.New("standard acceleration of gravity", 9.80665, 0, "m s^-2")
	standardAtmosphere                               = codata.New("standard atmosphere", 101325, 0, "Pa")
	standardStatePressure                            = codata.New("standard-state pressure", 100000, 0, "Pa")
	stefanBoltzmannConstant                          = codata.New("Stefan-Boltzmann constant", 5.670374419e-08, 0, "W m^-2 K^-4")
	tauComptonWavelength                             = codata.New("tau Compton wavelength", 6.97771e-16, 4.7e-20, "m")
	tauElectronMassRatio                             = codata.New("tau-electron mass ratio", 3477.23, 0.23, "")
	tauEnergyEquivalent                              = codata.New("tau energy equivalent", 1776.86, 0.12, "MeV")
	tauMass                                          = codata.New("tau mass", 3.16754e-27, 2.1e-31, "kg")
	tauMassEnergyEquivalent                          = codata.New("tau mass energy equivalent", 2.84684e-10, 1.9e-14, "J")
	tauMassInU                                       = codata.New("tau mass in u", 1.90754, 0.00013, "u")
	tauMolarMass                                     = codata.New("tau molar mass", 0.00190754, 1.3e-07, "kg mol^-1")
	tauMuonMassRatio                                 = codata.New("tau-muon mass ratio", 16.817, 0.0011, "")
	tauNeutronMassRatio                              = codata.New("tau-neutron mass ratio", 1.89115, 0.00013, "")
	tauProtonMassRatio                               = codata.New("tau-proton mass ratio", 1.89376, 0.00013, "")
	thomsonCrossSection                              = codata.New("Thomson cross section", 6.6524587321e-29, 6e-38, "m^2")
	tritonElectronMassRatio                          = codata.New("triton-electron mass ratio", 5496.92153573, 2.7e-07, "")
	tritonGFactor                                    = codata.New("triton g factor", 5.957924931, 1.2e-08, "")
	tritonMagMom                                     = codata.New("triton mag. mom.", 1.5046095202e-26, 3e-35, "J T^-1")
	tritonMagMomToBohrMagnetonRatio                  = codata.New("triton mag. mom. to Bohr magneton ratio", 0.0016223936651, 3.2e-12, "")
	tritonMagMomToNuclearMagnetonRatio               = codata.New("triton mag. mom. to nuclear magneton ratio", 2.9789624656, 5.9e-09, "")
	tritonMass                                       = codata.New("triton mass", 5.0073567446e-27, 1.5e-36, "kg")
	tritonMassEnergyEquivalent                       = codata.New("triton mass energy equivalent", 4.500387806e-10, 1.4e-19, "J")
	tritonMassEnergyEquivalentInMeV                  = codata.New("triton mass energy equivalent in MeV", 2808.92113298, 8.5e-07, "MeV")
	tritonMassInU                                    = codata.New("triton mass in u", 3.01550071621, 1.2e-10, "u")
	tritonMolarMass                                  = codata.New("triton molar mass", 0.00301550071517, 9.2e-13, "kg mol^-1")
	tritonProtonMassRatio                            = codata.New("triton-proton mass ratio", 2.99371703414, 1.5e-10, "")
	tritonRelativeAtomicMass                         = codata.New("triton relative atomic mass", 3.01550071621, 1.2e-10, "")
	tritonToProtonMagMomRatio                        = codata.New("triton to proton mag. mom. ratio", 1.0666399191, 2.1e-09, "")
	unifiedAtomicMassUnit                            = codata.New("unified atomic mass unit", 1.6605390666e-27, 5e-37, "kg")
	vacuumElectricPermittivity                       = codata.New("vacuum electric permittivity", 8.8541878128e-12, 1.3e-21, "F m^-1")
	vacuumMagPermeability                            = codata.New("vacuum mag. permeability", 1.25663706212e-06, 1.9e-16, "N A^-2")
	vonKlitzingConstant                              = codata.New("von Klitzing constant", 25812.80745, 0, "ohm")
	weakMixingAngle                                  = codata.New("weak mixing angle", 0.2229, 0.0003, "")
	wienFrequencyDisplacementLawConstant             = codata.New("Wien frequency displacement law constant", 5.878925757e+10, 0, "Hz K^-1")
	wienWavelengthDisplacementLawConstant            = codata.New("Wien wavelength displacement law constant", 0.002897771955, 0, "m K")
	wToZMassRatio                                    = codata.New("W to Z mass ratio", 0.88153, 0.00017, "")
)

// AlphaParticleElectronMassRatio returns the alpha particle-electron mass ratio (dimensionless).
func AlphaParticleElectronMassRatio() codata.Constant { return alphaParticleElectronMassRatio }

// AlphaParticleMass returns the alpha particle mass, in kg.
func AlphaParticleMass() codata.Constant { return alphaParticleMass }

// AlphaParticleMassEnergyEquivalent returns the alpha particle mass energy equivalent, in J.
func AlphaParticleMassEnergyEquivalent() codata.Constant { return alphaParticleMassEnergyEquivalent }

// AlphaParticleMassEnergyEquivalentInMeV returns the alpha particle mass energy equivalent in MeV.
func AlphaParticleMassEnergyEquivalentInMeV() codata.Constant { return alphaParticleMassEnergyEquivalentInMeV }

// AlphaParticleMassInU returns the alpha particle mass in u.
func AlphaParticleMassInU() codata.Constant { return alphaParticleMassInU }

// AlphaParticleMolarMass returns the alpha particle molar mass, in kg mol^-1.
func AlphaParticleMolarMass() codata.Constant { return alphaParticleMolarMass }

// AlphaParticleProtonMassRatio returns the alpha particle-proton mass ratio (dimensionless).
func AlphaParticleProtonMassRatio() codata.Constant { return alphaParticleProtonMassRatio }

// AlphaParticleRelativeAtomicMass returns the alpha particle relative atomic mass (dimensionless).
func AlphaParticleRelativeAtomicMass() codata.Constant { return alphaParticleRelativeAtomicMass }

// AngstromStar returns the Angstrom star, in m.
func AngstromStar() codata.Constant { return angstromStar }

// AtomicMassConstant returns the atomic mass constant, in kg.
func AtomicMassConstant() codata.Constant { return atomicMassConstant }

// AtomicMassConstantEnergyEquivalent returns the atomic mass constant energy equivalent, in J.
func AtomicMassConstantEnergyEquivalent() codata.Constant { return atomicMassConstantEnergyEquivalent }

// AtomicMassConstantEnergyEquivalentInMeV returns the atomic mass constant energy equivalent in MeV.
func AtomicMassConstantEnergyEquivalentInMeV() codata.Constant { return atomicMassConstantEnergyEquivalentInMeV }

// AtomicMassUnitElectronVoltRelationship returns the atomic mass unit-electron volt relationship, in eV.
func AtomicMassUnitElectronVoltRelationship() codata.Constant { return atomicMassUnitElectronVoltRelationship }

// AtomicMassUnitHartreeRelationship returns the atomic mass unit-hartree relationship, in E_h.
func AtomicMassUnitHartreeRelationship() codata.Constant { return atomicMassUnitHartreeRelationship }

// AtomicMassUnitHertzRelationship returns the atomic mass unit-hertz relationship, in Hz.
func AtomicMassUnitHertzRelationship() codata.Constant { return atomicMassUnitHertzRelationship }

// AtomicMassUnitInverseMeterRelationship returns the atomic mass unit-inverse meter relationship, in m^-1.
func AtomicMassUnitInverseMeterRelationship() codata.Constant { return atomicMassUnitInverseMeterRelationship }

// AtomicMassUnitJouleRelationship returns the atomic mass unit-joule relationship, in J.
func AtomicMassUnitJouleRelationship() codata.Constant { return atomicMassUnitJouleRelationship }

// AtomicMassUnitKelvinRelationship returns the atomic mass unit-kelvin relationship, in K.
func AtomicMassUnitKelvinRelationship() codata.Constant { return atomicMassUnitKelvinRelationship }

// AtomicMassUnitKilogramRelationship returns the atomic mass unit-kilogram relationship, in kg.
func AtomicMassUnitKilogramRelationship() codata.Constant { return atomicMassUnitKilogramRelationship }

// AtomicUnitOf1stHyperpolarizability returns the atomic unit of 1st hyperpolarizability, in C^3 m^3 J^-2.
func AtomicUnitOf1stHyperpolarizability() codata.Constant { return atomicUnitOf1stHyperpolarizability }

// AtomicUnitOf2ndHyperpolarizability returns the atomic unit of 2nd hyperpolarizability, in C^4 m^4 J^-3.
func AtomicUnitOf2ndHyperpolarizability() codata.Constant { return atomicUnitOf2ndHyperpolarizability }

// AtomicUnitOfAction returns the atomic unit of action, in J s, exact.
func AtomicUnitOfAction() codata.Constant { return atomicUnitOfAction }

// AtomicUnitOfCharge returns the atomic unit of charge, in C, exact.
func AtomicUnitOfCharge() codata.Constant { return atomicUnitOfCharge }

// AtomicUnitOfChargeDensity returns the atomic unit of charge density, in C m^-3.
func AtomicUnitOfChargeDensity() codata.Constant { return atomicUnitOfChargeDensity }

// AtomicUnitOfCurrent returns the atomic unit of current, in A.
func AtomicUnitOfCurrent() codata.Constant { return atomicUnitOfCurrent }

// AtomicUnitOfElectricDipoleMom returns the atomic unit of electric dipole mom., in C m.
func AtomicUnitOfElectricDipoleMom() codata.Constant { return atomicUnitOfElectricDipoleMom }

// AtomicUnitOfElectricField returns the atomic unit of electric field, in V m^-1.
func AtomicUnitOfElectricField() codata.Constant { return atomicUnitOfElectricField }

// AtomicUnitOfElectricFieldGradient returns the atomic unit of electric field gradient, in V m^-2.
func AtomicUnitOfElectricFieldGradient() codata.Constant { return atomicUnitOfElectricFieldGradient }

// AtomicUnitOfElectricPolarizability returns the atomic unit of electric polarizability, in C^2 m^2 J^-1.
func AtomicUnitOfElectricPolarizability() codata.Constant { return atomicUnitOfElectricPolarizability }

// AtomicUnitOfElectricPotential returns the atomic unit of electric potential, in V.
func AtomicUnitOfElectricPotential() codata.Constant { return atomicUnitOfElectricPotential }

// AtomicUnitOfElectricQuadrupoleMom returns the atomic unit of electric quadrupole mom., in C m^2.
func AtomicUnitOfElectricQuadrupoleMom() codata.Constant { return atomicUnitOfElectricQuadrupoleMom }

// AtomicUnitOfEnergy returns the atomic unit of energy, in J.
func AtomicUnitOfEnergy() codata.Constant { return atomicUnitOfEnergy }

// AtomicUnitOfForce returns the atomic unit of force, in N.
func AtomicUnitOfForce() codata.Constant { return atomicUnitOfForce }

// AtomicUnitOfLength returns the atomic unit of length, in m.
func AtomicUnitOfLength() codata.Constant { return atomicUnitOfLength }

// AtomicUnitOfMagDipoleMom returns the atomic unit of mag. dipole mom., in J T^-1.
func AtomicUnitOfMagDipoleMom() codata.Constant { return atomicUnitOfMagDipoleMom }

// AtomicUnitOfMagFluxDensity returns the atomic unit of mag. flux density, in T.
func AtomicUnitOfMagFluxDensity() codata.Constant { return atomicUnitOfMagFluxDensity }

// AtomicUnitOfMagnetizability returns the atomic unit of magnetizability, in J T^-2.
func AtomicUnitOfMagnetizability() codata.Constant { return atomicUnitOfMagnetizability }

// AtomicUnitOfMass returns the atomic unit of mass, in kg.
func AtomicUnitOfMass() codata.Constant { return atomicUnitOfMass }

// AtomicUnitOfMomentum returns the atomic unit of momentum, in kg m s^-1.
func AtomicUnitOfMomentum() codata.Constant { return atomicUnitOfMomentum }

// AtomicUnitOfPermittivity returns the atomic unit of permittivity, in F m^-1.
func AtomicUnitOfPermittivity() codata.Constant { return atomicUnitOfPermittivity }

// AtomicUnitOfTime returns the atomic unit of time, in s.
func AtomicUnitOfTime() codata.Constant { return atomicUnitOfTime }

// AtomicUnitOfVelocity returns the atomic unit of velocity, in m s^-1.
func AtomicUnitOfVelocity() codata.Constant { return atomicUnitOfVelocity }

// AvogadroConstant returns the Avogadro constant, in mol^-1, exact.
func AvogadroConstant() codata.Constant { return avogadroConstant }

// BohrMagneton returns the Bohr magneton, in J T^-1.
func BohrMagneton() codata.Constant { return bohrMagneton }

// BohrMagnetonInEVT returns the Bohr magneton in eV/T.
func BohrMagnetonInEVT() codata.Constant { return bohrMagnetonInEVT }

// BohrMagnetonInHzT returns the Bohr magneton in Hz/T.
func BohrMagnetonInHzT() codata.Constant { return bohrMagnetonInHzT }

// BohrMagnetonInInverseMeterPerTesla returns the Bohr magneton in inverse meter per tesla.
func BohrMagnetonInInverseMeterPerTesla() codata.Constant { return bohrMagnetonInInverseMeterPerTesla }

// BohrMagnetonInKT returns the Bohr magneton in K/T.
func BohrMagnetonInKT() codata.Constant { return bohrMagnetonInKT }

// BohrRadius returns the Bohr radius, in m.
func BohrRadius() codata.Constant { return bohrRadius }

// BoltzmannConstant returns the Boltzmann constant, in J K^-1, exact.
func BoltzmannConstant() codata.Constant { return boltzmannConstant }

// BoltzmannConstantInEVK returns the Boltzmann constant in eV/K, exact.
func BoltzmannConstantInEVK() codata.Constant { return boltzmannConstantInEVK }

// BoltzmannConstantInHzK returns the Boltzmann constant in Hz/K, exact.
func BoltzmannConstantInHzK() codata.Constant { return boltzmannConstantInHzK }

// BoltzmannConstantInInverseMeterPerKelvin returns the Boltzmann constant in inverse meter per kelvin, exact.
func BoltzmannConstantInInverseMeterPerKelvin() codata.Constant { return boltzmannConstantInInverseMeterPerKelvin }

// CharacteristicImpedanceOfVacuum returns the characteristic impedance of vacuum, in ohm.
func CharacteristicImpedanceOfVacuum() codata.Constant { return characteristicImpedanceOfVacuum }

// ClassicalElectronRadius returns the classical electron radius, in m.
func ClassicalElectronRadius() codata.Constant { return classicalElectronRadius }

// ComptonWavelength returns the Compton wavelength, in m.
func ComptonWavelength() codata.Constant { return comptonWavelength }

// ConductanceQuantum returns the conductance quantum, in S, exact.
func ConductanceQuantum() codata.Constant { return conductanceQuantum }

// ConventionalValueOfAmpere90 returns the conventional value of ampere-90, in A, exact.
func ConventionalValueOfAmpere90() codata.Constant { return conventionalValueOfAmpere90 }

// ConventionalValueOfCoulomb90 returns the conventional value of coulomb-90, in C, exact.
func ConventionalValueOfCoulomb90() codata.Constant { return conventionalValueOfCoulomb90 }

// ConventionalValueOfFarad90 returns the conventional value of farad-90, in F, exact.
func ConventionalValueOfFarad90() codata.Constant { return conventionalValueOfFarad90 }

// ConventionalValueOfHenry90 returns the conventional value of henry-90, in H, exact.
func ConventionalValueOfHenry90() codata.Constant { return conventionalValueOfHenry90 }

// ConventionalValueOfJosephsonConstant returns the conventional value of Josephson constant, in Hz V^-1, exact.
func ConventionalValueOfJosephsonConstant() codata.Constant { return conventionalValueOfJosephsonConstant }

// ConventionalValueOfOhm90 returns the conventional value of ohm-90, in ohm, exact.
func ConventionalValueOfOhm90() codata.Constant { return conventionalValueOfOhm90 }

// ConventionalValueOfVolt90 returns the conventional value of volt-90, in V, exact.
func ConventionalValueOfVolt90() codata.Constant { return conventionalValueOfVolt90 }

// ConventionalValueOfVonKlitzingConstant returns the conventional value of von Klitzing constant, in ohm, exact.
func ConventionalValueOfVonKlitzingConstant() codata.Constant { return conventionalValueOfVonKlitzingConstant }

// ConventionalValueOfWatt90 returns the conventional value of watt-90, in W, exact.
func ConventionalValueOfWatt90() codata.Constant { return conventionalValueOfWatt90 }

// CopperXUnit returns the Copper x unit, in m.
func CopperXUnit() codata.Constant { return copperXUnit }

// DeuteronElectronMagMomRatio returns the deuteron-electron mag. mom. ratio (dimensionless).
func DeuteronElectronMagMomRatio() codata.Constant { return deuteronElectronMagMomRatio }

// DeuteronElectronMassRatio returns the deuteron-electron mass ratio (dimensionless).
func DeuteronElectronMassRatio() codata.Constant { return deuteronElectronMassRatio }

// DeuteronGFactor returns the deuteron g factor (dimensionless).
func DeuteronGFactor() codata.Constant { return deuteronGFactor }

// DeuteronMagMom returns the deuteron mag. mom., in J T^-1.
func DeuteronMagMom() codata.Constant { return deuteronMagMom }

// DeuteronMagMomToBohrMagnetonRatio returns the deuteron mag. mom. to Bohr magneton ratio (dimensionless).
func DeuteronMagMomToBohrMagnetonRatio() codata.Constant { return deuteronMagMomToBohrMagnetonRatio }

// DeuteronMagMomToNuclearMagnetonRatio returns the deuteron mag. mom. to nuclear magneton ratio (dimensionless).
func DeuteronMagMomToNuclearMagnetonRatio() codata.Constant { return deuteronMagMomToNuclearMagnetonRatio }

// DeuteronMass returns the deuteron mass, in kg.
func DeuteronMass() codata.Constant { return deuteronMass }

// DeuteronMassEnergyEquivalent returns the deuteron mass energy equivalent, in J.
func DeuteronMassEnergyEquivalent() codata.Constant { return deuteronMassEnergyEquivalent }

// DeuteronMassEnergyEquivalentInMeV returns the deuteron mass energy equivalent in MeV.
func DeuteronMassEnergyEquivalentInMeV() codata.Constant { return deuteronMassEnergyEquivalentInMeV }

// DeuteronMassInU returns the deuteron mass in u.
func DeuteronMassInU() codata.Constant { return deuteronMassInU }

// DeuteronMolarMass returns the deuteron molar mass, in kg mol^-1.
func DeuteronMolarMass() codata.Constant { return deuteronMolarMass }

// DeuteronNeutronMagMomRatio returns the deuteron-neutron mag. mom. ratio (dimensionless).
func DeuteronNeutronMagMomRatio() codata.Constant { return deuteronNeutronMagMomRatio }

// DeuteronProtonMagMomRatio returns the deuteron-proton mag. mom. ratio (dimensionless).
func DeuteronProtonMagMomRatio() codata.Constant { return deuteronProtonMagMomRatio }

// DeuteronProtonMassRatio returns the deuteron-proton mass ratio (dimensionless).
func DeuteronProtonMassRatio() codata.Constant { return deuteronProtonMassRatio }

// DeuteronRelativeAtomicMass returns the deuteron relative atomic mass (dimensionless).
func DeuteronRelativeAtomicMass() codata.Constant { return deuteronRelativeAtomicMass }

// DeuteronRmsChargeRadius returns the deuteron rms charge radius, in m.
func DeuteronRmsChargeRadius() codata.Constant { return deuteronRmsChargeRadius }

// ElectronChargeToMassQuotient returns the electron charge to mass quotient, in C kg^-1.
func ElectronChargeToMassQuotient() codata.Constant { return electronChargeToMassQuotient }

// ElectronDeuteronMagMomRatio returns the electron-deuteron mag. mom. ratio (dimensionless).
func ElectronDeuteronMagMomRatio() codata.Constant { return electronDeuteronMagMomRatio }

// ElectronDeuteronMassRatio returns the electron-deuteron mass ratio (dimensionless).
func ElectronDeuteronMassRatio() codata.Constant { return electronDeuteronMassRatio }

// ElectronGFactor returns the electron g factor (dimensionless).
func ElectronGFactor() codata.Constant { return electronGFactor }

// ElectronGyromagRatio returns the electron gyromag. ratio, in s^-1 T^-1.
func ElectronGyromagRatio() codata.Constant { return electronGyromagRatio }

// ElectronGyromagRatioInMHzT returns the electron gyromag. ratio in MHz/T.
func ElectronGyromagRatioInMHzT() codata.Constant { return electronGyromagRatioInMHzT }

// ElectronHelionMassRatio returns the electron-helion mass ratio (dimensionless).
func ElectronHelionMassRatio() codata.Constant { return electronHelionMassRatio }

// ElectronMagMom returns the electron mag. mom., in J T^-1.
func ElectronMagMom() codata.Constant { return electronMagMom }

// ElectronMagMomAnomaly returns the electron mag. mom. anomaly (dimensionless).
func ElectronMagMomAnomaly() codata.Constant { return electronMagMomAnomaly }

// ElectronMagMomToBohrMagnetonRatio returns the electron mag. mom. to Bohr magneton ratio (dimensionless).
func ElectronMagMomToBohrMagnetonRatio() codata.Constant { return electronMagMomToBohrMagnetonRatio }

// ElectronMagMomToNuclearMagnetonRatio returns the electron mag. mom. to nuclear magneton ratio (dimensionless).
func ElectronMagMomToNuclearMagnetonRatio() codata.Constant { return electronMagMomToNuclearMagnetonRatio }

// ElectronMass returns the electron mass, in kg.
func ElectronMass() codata.Constant { return electronMass }

// ElectronMassEnergyEquivalent returns the electron mass energy equivalent, in J.
func ElectronMassEnergyEquivalent() codata.Constant { return electronMassEnergyEquivalent }

// ElectronMassEnergyEquivalentInMeV returns the electron mass energy equivalent in MeV.
func ElectronMassEnergyEquivalentInMeV() codata.Constant { return electronMassEnergyEquivalentInMeV }

// ElectronMassInU returns the electron mass in u.
func ElectronMassInU() codata.Constant { return electronMassInU }

// ElectronMolarMass returns the electron molar mass, in kg mol^-1.
func ElectronMolarMass() codata.Constant { return electronMolarMass }

// ElectronMuonMagMomRatio returns the electron-muon mag. mom. ratio (dimensionless).
func ElectronMuonMagMomRatio() codata.Constant { return electronMuonMagMomRatio }

// ElectronMuonMassRatio returns the electron-muon mass ratio (dimensionless).
func ElectronMuonMassRatio() codata.Constant { return electronMuonMassRatio }

// ElectronNeutronMagMomRatio returns the electron-neutron mag. mom. ratio (dimensionless).
func ElectronNeutronMagMomRatio() codata.Constant { return electronNeutronMagMomRatio }

// ElectronNeutronMassRatio returns the electron-neutron mass ratio (dimensionless).
func ElectronNeutronMassRatio() codata.Constant { return electronNeutronMassRatio }

// ElectronProtonMagMomRatio returns the electron-proton mag. mom. ratio (dimensionless).
func ElectronProtonMagMomRatio() codata.Constant { return electronProtonMagMomRatio }

// ElectronProtonMassRatio returns the electron-proton mass ratio (dimensionless).
func ElectronProtonMassRatio() codata.Constant { return electronProtonMassRatio }

// ElectronRelativeAtomicMass returns the electron relative atomic mass (dimensionless).
func ElectronRelativeAtomicMass() codata.Constant { return electronRelativeAtomicMass }

// ElectronTauMassRatio returns the electron-tau mass ratio (dimensionless).
func ElectronTauMassRatio() codata.Constant { return electronTauMassRatio }

// ElectronToAlphaParticleMassRatio returns the electron to alpha particle mass ratio (dimensionless).
func ElectronToAlphaParticleMassRatio() codata.Constant { return electronToAlphaParticleMassRatio }

// ElectronToShieldedHelionMagMomRatio returns the electron to shielded helion mag. mom. ratio (dimensionless).
func ElectronToShieldedHelionMagMomRatio() codata.Constant { return electronToShieldedHelionMagMomRatio }

// ElectronToShieldedProtonMagMomRatio returns the electron to shielded proton mag. mom. ratio (dimensionless).
func ElectronToShieldedProtonMagMomRatio() codata.Constant { return electronToShieldedProtonMagMomRatio }

// ElectronTritonMassRatio returns the electron-triton mass ratio (dimensionless).
func ElectronTritonMassRatio() codata.Constant { return electronTritonMassRatio }

// ElectronVolt returns the electron volt, in J, exact.
func ElectronVolt() codata.Constant { return electronVolt }

// ElectronVoltAtomicMassUnitRelationship returns the electron volt-atomic mass unit relationship, in u.
func ElectronVoltAtomicMassUnitRelationship() codata.Constant { return electronVoltAtomicMassUnitRelationship }

// ElectronVoltHartreeRelationship returns the electron volt-hartree relationship, in E_h.
func ElectronVoltHartreeRelationship() codata.Constant { return electronVoltHartreeRelationship }

// ElectronVoltHertzRelationship returns the electron volt-hertz relationship, in Hz, exact.
func ElectronVoltHertzRelationship() codata.Constant { return electronVoltHertzRelationship }

// ElectronVoltInverseMeterRelationship returns the electron volt-inverse meter relationship, in m^-1, exact.
func ElectronVoltInverseMeterRelationship() codata.Constant { return electronVoltInverseMeterRelationship }

// ElectronVoltJouleRelationship returns the electron volt-joule relationship, in J, exact.
func ElectronVoltJouleRelationship() codata.Constant { return electronVoltJouleRelationship }

// ElectronVoltKelvinRelationship returns the electron volt-kelvin relationship, in K, exact.
func ElectronVoltKelvinRelationship() codata.Constant { return electronVoltKelvinRelationship }

// ElectronVoltKilogramRelationship returns the electron volt-kilogram relationship, in kg, exact.
func ElectronVoltKilogramRelationship() codata.Constant { return electronVoltKilogramRelationship }

// ElementaryCharge returns the elementary charge, in C, exact.
func ElementaryCharge() codata.Constant { return elementaryCharge }

// ElementaryChargeOverHBar returns the elementary charge over h-bar, in A J^-1, exact.
func ElementaryChargeOverHBar() codata.Constant { return elementaryChargeOverHBar }

// FaradayConstant returns the Faraday constant, in C mol^-1, exact.
func FaradayConstant() codata.Constant { return faradayConstant }

// FermiCouplingConstant returns the Fermi coupling constant, in GeV^-2.
func FermiCouplingConstant() codata.Constant { return fermiCouplingConstant }

// FineStructureConstant returns the fine-structure constant (dimensionless).
func FineStructureConstant() codata.Constant { return fineStructureConstant }

// FirstRadiationConstant returns the first radiation constant, in W m^2, exact.
func FirstRadiationConstant() codata.Constant { return firstRadiationConstant }

// FirstRadiationConstantForSpectralRadiance returns the first radiation constant for spectral radiance, in W m^2 sr^-1, exact.
func FirstRadiationConstantForSpectralRadiance() codata.Constant { return firstRadiationConstantForSpectralRadiance }

// HartreeAtomicMassUnitRelationship returns the hartree-atomic mass unit relationship, in u.
func HartreeAtomicMassUnitRelationship() codata.Constant { return hartreeAtomicMassUnitRelationship }

// HartreeElectronVoltRelationship returns the hartree-electron volt relationship, in eV.
func HartreeElectronVoltRelationship() codata.Constant { return hartreeElectronVoltRelationship }

// HartreeEnergy returns the Hartree energy, in J.
func HartreeEnergy() codata.Constant { return hartreeEnergy }

// HartreeEnergyInEV returns the Hartree energy in eV.
func HartreeEnergyInEV() codata.Constant { return hartreeEnergyInEV }

// HartreeHertzRelationship returns the hartree-hertz relationship, in Hz.
func HartreeHertzRelationship() codata.Constant { return hartreeHertzRelationship }

// HartreeInverseMeterRelationship returns the hartree-inverse meter relationship, in m^-1.
func HartreeInverseMeterRelationship() codata.Constant { return hartreeInverseMeterRelationship }

// HartreeJouleRelationship returns the hartree-joule relationship, in J.
func HartreeJouleRelationship() codata.Constant { return hartreeJouleRelationship }

// HartreeKelvinRelationship returns the hartree-kelvin relationship, in K.
func HartreeKelvinRelationship() codata.Constant { return hartreeKelvinRelationship }

// HartreeKilogramRelationship returns the hartree-kilogram relationship, in kg.
func HartreeKilogramRelationship() codata.Constant { return hartreeKilogramRelationship }

// HelionElectronMassRatio returns the helion-electron mass ratio (dimensionless).
func HelionElectronMassRatio() codata.Constant { return helionElectronMassRatio }

// HelionGFactor returns the helion g factor (dimensionless).
func HelionGFactor() codata.Constant { return helionGFactor }

// HelionMagMom returns the helion mag. mom., in J T^-1.
func HelionMagMom() codata.Constant { return helionMagMom }

// HelionMagMomToBohrMagnetonRatio returns the helion mag. mom. to Bohr magneton ratio (dimensionless).
func HelionMagMomToBohrMagnetonRatio() codata.Constant { return helionMagMomToBohrMagnetonRatio }

// HelionMagMomToNuclearMagnetonRatio returns the helion mag. mom. to nuclear magneton ratio (dimensionless).
func HelionMagMomToNuclearMagnetonRatio() codata.Constant { return helionMagMomToNuclearMagnetonRatio }

// HelionMass returns the helion mass, in kg.
func HelionMass() codata.Constant { return helionMass }

// HelionMassEnergyEquivalent returns the helion mass energy equivalent, in J.
func HelionMassEnergyEquivalent() codata.Constant { return helionMassEnergyEquivalent }

// HelionMassEnergyEquivalentInMeV returns the helion mass energy equivalent in MeV.
func HelionMassEnergyEquivalentInMeV() codata.Constant { return helionMassEnergyEquivalentInMeV }

// HelionMassInU returns the helion mass in u.
func HelionMassInU() codata.Constant { return helionMassInU }

// HelionMolarMass returns the helion molar mass, in kg mol^-1.
func HelionMolarMass() codata.Constant { return helionMolarMass }

// HelionProtonMassRatio returns the helion-proton mass ratio (dimensionless).
func HelionProtonMassRatio() codata.Constant { return helionProtonMassRatio }

// HelionRelativeAtomicMass returns the helion relative atomic mass (dimensionless).
func HelionRelativeAtomicMass() codata.Constant { return helionRelativeAtomicMass }

// HelionShieldingShift returns the helion shielding shift (dimensionless).
func HelionShieldingShift() codata.Constant { return helionShieldingShift }

// HertzAtomicMassUnitRelationship returns the hertz-atomic mass unit relationship, in u.
func HertzAtomicMassUnitRelationship() codata.Constant { return hertzAtomicMassUnitRelationship }

// HertzElectronVoltRelationship returns the hertz-electron volt relationship, in eV, exact.
func HertzElectronVoltRelationship() codata.Constant { return hertzElectronVoltRelationship }

// HertzHartreeRelationship returns the hertz-hartree relationship, in E_h.
func HertzHartreeRelationship() codata.Constant { return hertzHartreeRelationship }

// HertzInverseMeterRelationship returns the hertz-inverse meter relationship, in m^-1, exact.
func HertzInverseMeterRelationship() codata.Constant { return hertzInverseMeterRelationship }

// HertzJouleRelationship returns the hertz-joule relationship, in J, exact.
func HertzJouleRelationship() codata.Constant { return hertzJouleRelationship }

// HertzKelvinRelationship returns the hertz-kelvin relationship, in K, exact.
func HertzKelvinRelationship() codata.Constant { return hertzKelvinRelationship }

// HertzKilogramRelationship returns the hertz-kilogram relationship, in kg, exact.
func HertzKilogramRelationship() codata.Constant { return hertzKilogramRelationship }

// HyperfineTransitionFrequencyOfCs133 returns the hyperfine transition frequency of Cs-133, in Hz, exact.
func HyperfineTransitionFrequencyOfCs133() codata.Constant { return hyperfineTransitionFrequencyOfCs133 }

// InverseFineStructureConstant returns the inverse fine-structure constant (dimensionless).
func InverseFineStructureConstant() codata.Constant { return inverseFineStructureConstant }

// InverseMeterAtomicMassUnitRelationship returns the inverse meter-atomic mass unit relationship, in u.
func InverseMeterAtomicMassUnitRelationship() codata.Constant { return inverseMeterAtomicMassUnitRelationship }

// InverseMeterElectronVoltRelationship returns the inverse meter-electron volt relationship, in eV, exact.
func InverseMeterElectronVoltRelationship() codata.Constant { return inverseMeterElectronVoltRelationship }

// InverseMeterHartreeRelationship returns the inverse meter-hartree relationship, in E_h.
func InverseMeterHartreeRelationship() codata.Constant { return inverseMeterHartreeRelationship }

// InverseMeterHertzRelationship returns the inverse meter-hertz relationship, in Hz, exact.
func InverseMeterHertzRelationship() codata.Constant { return inverseMeterHertzRelationship }

// InverseMeterJouleRelationship returns the inverse meter-joule relationship, in J, exact.
func InverseMeterJouleRelationship() codata.Constant { return inverseMeterJouleRelationship }

// InverseMeterKelvinRelationship returns the inverse meter-kelvin relationship, in K, exact.
func InverseMeterKelvinRelationship() codata.Constant { return inverseMeterKelvinRelationship }

// InverseMeterKilogramRelationship returns the inverse meter-kilogram relationship, in kg, exact.
func InverseMeterKilogramRelationship() codata.Constant { return inverseMeterKilogramRelationship }

// InverseOfConductanceQuantum returns the inverse of conductance quantum, in ohm, exact.
func InverseOfConductanceQuantum() codata.Constant { return inverseOfConductanceQuantum }

// JosephsonConstant returns the Josephson constant, in Hz V^-1, exact.
func JosephsonConstant() codata.Constant { return josephsonConstant }

// JouleAtomicMassUnitRelationship returns the joule-atomic mass unit relationship, in u.
func JouleAtomicMassUnitRelationship() codata.Constant { return jouleAtomicMassUnitRelationship }

// JouleElectronVoltRelationship returns the joule-electron volt relationship, in eV, exact.
func JouleElectronVoltRelationship() codata.Constant { return jouleElectronVoltRelationship }

// JouleHartreeRelationship returns the joule-hartree relationship, in E_h.
func JouleHartreeRelationship() codata.Constant { return jouleHartreeRelationship }

// JouleHertzRelationship returns the joule-hertz relationship, in Hz, exact.
func JouleHertzRelationship() codata.Constant { return jouleHertzRelationship }

// JouleInverseMeterRelationship returns the joule-inverse meter relationship, in m^-1, exact.
func JouleInverseMeterRelationship() codata.Constant { return jouleInverseMeterRelationship }

// JouleKelvinRelationship returns the joule-kelvin relationship, in K, exact.
func JouleKelvinRelationship() codata.Constant { return jouleKelvinRelationship }

// JouleKilogramRelationship returns the joule-kilogram relationship, in kg, exact.
func JouleKilogramRelationship() codata.Constant { return jouleKilogramRelationship }

// KelvinAtomicMassUnitRelationship returns the kelvin-atomic mass unit relationship, in u.
func KelvinAtomicMassUnitRelationship() codata.Constant { return kelvinAtomicMassUnitRelationship }

// KelvinElectronVoltRelationship returns the kelvin-electron volt relationship, in eV, exact.
func KelvinElectronVoltRelationship() codata.Constant { return kelvinElectronVoltRelationship }

// KelvinHartreeRelationship returns the kelvin-hartree relationship, in E_h.
func KelvinHartreeRelationship() codata.Constant { return kelvinHartreeRelationship }

// KelvinHertzRelationship returns the kelvin-hertz relationship, in Hz, exact.
func KelvinHertzRelationship() codata.Constant { return kelvinHertzRelationship }

// KelvinInverseMeterRelationship returns the kelvin-inverse meter relationship, in m^-1, exact.
func KelvinInverseMeterRelationship() codata.Constant { return kelvinInverseMeterRelationship }

// KelvinJouleRelationship returns the kelvin-joule relationship, in J, exact.
func KelvinJouleRelationship() codata.Constant { return kelvinJouleRelationship }

// KelvinKilogramRelationship returns the kelvin-kilogram relationship, in kg, exact.
func KelvinKilogramRelationship() codata.Constant { return kelvinKilogramRelationship }

// KilogramAtomicMassUnitRelationship returns the kilogram-atomic mass unit relationship, in u.
func KilogramAtomicMassUnitRelationship() codata.Constant { return kilogramAtomicMassUnitRelationship }

// KilogramElectronVoltRelationship returns the kilogram-electron volt relationship, in eV, exact.
func KilogramElectronVoltRelationship() codata.Constant { return kilogramElectronVoltRelationship }

// KilogramHartreeRelationship returns the kilogram-hartree relationship, in E_h.
func KilogramHartreeRelationship() codata.Constant { return kilogramHartreeRelationship }

// KilogramHertzRelationship returns the kilogram-hertz relationship, in Hz, exact.
func KilogramHertzRelationship() codata.Constant { return kilogramHertzRelationship }

// KilogramInverseMeterRelationship returns the kilogram-inverse meter relationship, in m^-1, exact.
func KilogramInverseMeterRelationship() codata.Constant { return kilogramInverseMeterRelationship }

// KilogramJouleRelationship returns the kilogram-joule relationship, in J, exact.
func KilogramJouleRelationship() codata.Constant { return kilogramJouleRelationship }

// KilogramKelvinRelationship returns the kilogram-kelvin relationship, in K, exact.
func KilogramKelvinRelationship() codata.Constant { return kilogramKelvinRelationship }

// LatticeParameterOfSilicon returns the lattice parameter of silicon, in m.
func LatticeParameterOfSilicon() codata.Constant { return latticeParameterOfSilicon }

// LatticeSpacingOfIdealSi220 returns the lattice spacing of ideal Si (220), in m.
func LatticeSpacingOfIdealSi220() codata.Constant { return latticeSpacingOfIdealSi220 }

// LoschmidtConstant27315K100KPa returns the Loschmidt constant (273.15 K, 100 kPa), in m^-3, exact.
func LoschmidtConstant27315K100KPa() codata.Constant { return loschmidtConstant27315K100KPa }

// LoschmidtConstant27315K101325KPa returns the Loschmidt constant (273.15 K, 101.325 kPa), in m^-3, exact.
func LoschmidtConstant27315K101325KPa() codata.Constant { return loschmidtConstant27315K101325KPa }

// LuminousEfficacy returns the luminous efficacy, in lm W^-1, exact.
func LuminousEfficacy() codata.Constant { return luminousEfficacy }

// MagFluxQuantum returns the mag. flux quantum, in Wb, exact.
func MagFluxQuantum() codata.Constant { return magFluxQuantum }

// MolarGasConstant returns the molar gas constant, in J mol^-1 K^-1, exact.
func MolarGasConstant() codata.Constant { return molarGasConstant }

// MolarMassConstant returns the molar mass constant, in kg mol^-1.
func MolarMassConstant() codata.Constant { return molarMassConstant }

// MolarMassOfCarbon12 returns the molar mass of carbon-12, in kg mol^-1.
func MolarMassOfCarbon12() codata.Constant { return molarMassOfCarbon12 }

// MolarPlanckConstant returns the molar Planck constant, in J s mol^-1, exact.
func MolarPlanckConstant() codata.Constant { return molarPlanckConstant }

// MolarVolumeOfIdealGas27315K100KPa returns the molar volume of ideal gas (273.15 K, 100 kPa), in m^3 mol^-1, exact.
func MolarVolumeOfIdealGas27315K100KPa() codata.Constant { return molarVolumeOfIdealGas27315K100KPa }

// MolarVolumeOfIdealGas27315K101325KPa returns the molar volume of ideal gas (273.15 K, 101.325 kPa), in m^3 mol^-1, exact.
func MolarVolumeOfIdealGas27315K101325KPa() codata.Constant { return molarVolumeOfIdealGas27315K101325KPa }

// MolarVolumeOfSilicon returns the molar volume of silicon, in m^3 mol^-1.
func MolarVolumeOfSilicon() codata.Constant { return molarVolumeOfSilicon }

// MolybdenumXUnit returns the Molybdenum x unit, in m.
func MolybdenumXUnit() codata.Constant { return molybdenumXUnit }

// MuonComptonWavelength returns the muon Compton wavelength, in m.
func MuonComptonWavelength() codata.Constant { return muonComptonWavelength }

// MuonElectronMassRatio returns the muon-electron mass ratio (dimensionless).
func MuonElectronMassRatio() codata.Constant { return muonElectronMassRatio }

// MuonGFactor returns the muon g factor (dimensionless).
func MuonGFactor() codata.Constant { return muonGFactor }

// MuonMagMom returns the muon mag. mom., in J T^-1.
func MuonMagMom() codata.Constant { return muonMagMom }

// MuonMagMomAnomaly returns the muon mag. mom. anomaly (dimensionless).
func MuonMagMomAnomaly() codata.Constant { return muonMagMomAnomaly }

// MuonMagMomToBohrMagnetonRatio returns the muon mag. mom. to Bohr magneton ratio (dimensionless).
func MuonMagMomToBohrMagnetonRatio() codata.Constant { return muonMagMomToBohrMagnetonRatio }

// MuonMagMomToNuclearMagnetonRatio returns the muon mag. mom. to nuclear magneton ratio (dimensionless).
func MuonMagMomToNuclearMagnetonRatio() codata.Constant { return muonMagMomToNuclearMagnetonRatio }

// MuonMass returns the muon mass, in kg.
func MuonMass() codata.Constant { return muonMass }

// MuonMassEnergyEquivalent returns the muon mass energy equivalent, in J.
func MuonMassEnergyEquivalent() codata.Constant { return muonMassEnergyEquivalent }

// MuonMassEnergyEquivalentInMeV returns the muon mass energy equivalent in MeV.
func MuonMassEnergyEquivalentInMeV() codata.Constant { return muonMassEnergyEquivalentInMeV }

// MuonMassInU returns the muon mass in u.
func MuonMassInU() codata.Constant { return muonMassInU }

// MuonMolarMass returns the muon molar mass, in kg mol^-1.
func MuonMolarMass() codata.Constant { return muonMolarMass }

// MuonNeutronMassRatio returns the muon-neutron mass ratio (dimensionless).
func MuonNeutronMassRatio() codata.Constant { return muonNeutronMassRatio }

// MuonProtonMagMomRatio returns the muon-proton mag. mom. ratio (dimensionless).
func MuonProtonMagMomRatio() codata.Constant { return muonProtonMagMomRatio }

// MuonProtonMassRatio returns the muon-proton mass ratio (dimensionless).
func MuonProtonMassRatio() codata.Constant { return muonProtonMassRatio }

// MuonTauMassRatio returns the muon-tau mass ratio (dimensionless).
func MuonTauMassRatio() codata.Constant { return muonTauMassRatio }

// NaturalUnitOfAction returns the natural unit of action, in J s, exact.
func NaturalUnitOfAction() codata.Constant { return naturalUnitOfAction }

// NaturalUnitOfActionInEVS returns the natural unit of action in eV s, exact.
func NaturalUnitOfActionInEVS() codata.Constant { return naturalUnitOfActionInEVS }

// NaturalUnitOfEnergy returns the natural unit of energy, in J.
func NaturalUnitOfEnergy() codata.Constant { return naturalUnitOfEnergy }

// NaturalUnitOfEnergyInMeV returns the natural unit of energy in MeV.
func NaturalUnitOfEnergyInMeV() codata.Constant { return naturalUnitOfEnergyInMeV }

// NaturalUnitOfLength returns the natural unit of length, in m.
func NaturalUnitOfLength() codata.Constant { return naturalUnitOfLength }

// NaturalUnitOfMass returns the natural unit of mass, in kg.
func NaturalUnitOfMass() codata.Constant { return naturalUnitOfMass }

// NaturalUnitOfMomentum returns the natural unit of momentum, in kg m s^-1.
func NaturalUnitOfMomentum() codata.Constant { return naturalUnitOfMomentum }

// NaturalUnitOfMomentumInMeVC returns the natural unit of momentum in MeV/c.
func NaturalUnitOfMomentumInMeVC() codata.Constant { return naturalUnitOfMomentumInMeVC }

// NaturalUnitOfTime returns the natural unit of time, in s.
func NaturalUnitOfTime() codata.Constant { return naturalUnitOfTime }

// NaturalUnitOfVelocity returns the natural unit of velocity, in m s^-1, exact.
func NaturalUnitOfVelocity() codata.Constant { return naturalUnitOfVelocity }

// NeutronComptonWavelength returns the neutron Compton wavelength, in m.
func NeutronComptonWavelength() codata.Constant { return neutronComptonWavelength }

// NeutronElectronMagMomRatio returns the neutron-electron mag. mom. ratio (dimensionless).
func NeutronElectronMagMomRatio() codata.Constant { return neutronElectronMagMomRatio }

// NeutronElectronMassRatio returns the neutron-electron mass ratio (dimensionless).
func NeutronElectronMassRatio() codata.Constant { return neutronElectronMassRatio }

// NeutronGFactor returns the neutron g factor (dimensionless).
func NeutronGFactor() codata.Constant { return neutronGFactor }

// NeutronGyromagRatio returns the neutron gyromag. ratio, in s^-1 T^-1.
func NeutronGyromagRatio() codata.Constant { return neutronGyromagRatio }

// NeutronGyromagRatioInMHzT returns the neutron gyromag. ratio in MHz/T.
func NeutronGyromagRatioInMHzT() codata.Constant { return neutronGyromagRatioInMHzT }

// NeutronMagMom returns the neutron mag. mom., in J T^-1.
func NeutronMagMom() codata.Constant { return neutronMagMom }

// NeutronMagMomToBohrMagnetonRatio returns the neutron mag. mom. to Bohr magneton ratio (dimensionless).
func NeutronMagMomToBohrMagnetonRatio() codata.Constant { return neutronMagMomToBohrMagnetonRatio }

// NeutronMagMomToNuclearMagnetonRatio returns the neutron mag. mom. to nuclear magneton ratio (dimensionless).
func NeutronMagMomToNuclearMagnetonRatio() codata.Constant { return neutronMagMomToNuclearMagnetonRatio }

// NeutronMass returns the neutron mass, in kg.
func NeutronMass() codata.Constant { return neutronMass }

// NeutronMassEnergyEquivalent returns the neutron mass energy equivalent, in J.
func NeutronMassEnergyEquivalent() codata.Constant { return neutronMassEnergyEquivalent }

// NeutronMassEnergyEquivalentInMeV returns the neutron mass energy equivalent in MeV.
func NeutronMassEnergyEquivalentInMeV() codata.Constant { return neutronMassEnergyEquivalentInMeV }

// NeutronMassInU returns the neutron mass in u.
func NeutronMassInU() codata.Constant { return neutronMassInU }

// NeutronMolarMass returns the neutron molar mass, in kg mol^-1.
func NeutronMolarMass() codata.Constant { return neutronMolarMass }

// NeutronMuonMassRatio returns the neutron-muon mass ratio (dimensionless).
func NeutronMuonMassRatio() codata.Constant { return neutronMuonMassRatio }

// NeutronProtonMagMomRatio returns the neutron-proton mag. mom. ratio (dimensionless).
func NeutronProtonMagMomRatio() codata.Constant { return neutronProtonMagMomRatio }

// NeutronProtonMassDifference returns the neutron-proton mass difference, in kg.
func NeutronProtonMassDifference() codata.Constant { return neutronProtonMassDifference }

// NeutronProtonMassDifferenceEnergyEquivalent returns the neutron-proton mass difference energy equivalent, in J.
func NeutronProtonMassDifferenceEnergyEquivalent() codata.Constant { return neutronProtonMassDifferenceEnergyEquivalent }

// NeutronProtonMassDifferenceEnergyEquivalentInMeV returns the neutron-proton mass difference energy equivalent in MeV.
func NeutronProtonMassDifferenceEnergyEquivalentInMeV() codata.Constant { return neutronProtonMassDifferenceEnergyEquivalentInMeV }

// NeutronProtonMassDifferenceInU returns the neutron-proton mass difference in u.
func NeutronProtonMassDifferenceInU() codata.Constant { return neutronProtonMassDifferenceInU }

// NeutronProtonMassRatio returns the neutron-proton mass ratio (dimensionless).
func NeutronProtonMassRatio() codata.Constant { return neutronProtonMassRatio }

// NeutronRelativeAtomicMass returns the neutron relative atomic mass (dimensionless).
func NeutronRelativeAtomicMass() codata.Constant { return neutronRelativeAtomicMass }

// NeutronTauMassRatio returns the neutron-tau mass ratio (dimensionless).
func NeutronTauMassRatio() codata.Constant { return neutronTauMassRatio }

// NeutronToShieldedProtonMagMomRatio returns the neutron to shielded proton mag. mom. ratio (dimensionless).
func NeutronToShieldedProtonMagMomRatio() codata.Constant { return neutronToShieldedProtonMagMomRatio }

// NewtonianConstantOfGravitation returns the Newtonian constant of gravitation, in m^3 kg^-1 s^-2.
func NewtonianConstantOfGravitation() codata.Constant { return newtonianConstantOfGravitation }

// NewtonianConstantOfGravitationOverHBarC returns the Newtonian constant of gravitation over h-bar c, in (GeV/c^2)^-2.
func NewtonianConstantOfGravitationOverHBarC() codata.Constant { return newtonianConstantOfGravitationOverHBarC }

// NuclearMagneton returns the nuclear magneton, in J T^-1.
func NuclearMagneton() codata.Constant { return nuclearMagneton }

// NuclearMagnetonInEVT returns the nuclear magneton in eV/T.
func NuclearMagnetonInEVT() codata.Constant { return nuclearMagnetonInEVT }

// NuclearMagnetonInInverseMeterPerTesla returns the nuclear magneton in inverse meter per tesla.
func NuclearMagnetonInInverseMeterPerTesla() codata.Constant { return nuclearMagnetonInInverseMeterPerTesla }

// NuclearMagnetonInKT returns the nuclear magneton in K/T.
func NuclearMagnetonInKT() codata.Constant { return nuclearMagnetonInKT }

// NuclearMagnetonInMHzT returns the nuclear magneton in MHz/T.
func NuclearMagnetonInMHzT() codata.Constant { return nuclearMagnetonInMHzT }

// PlanckConstant returns the Planck constant, in J s, exact.
func PlanckConstant() codata.Constant { return planckConstant }

// PlanckConstantInEVHz returns the Planck constant in eV/Hz, exact.
func PlanckConstantInEVHz() codata.Constant { return planckConstantInEVHz }

// PlanckLength returns the Planck length, in m.
func PlanckLength() codata.Constant { return planckLength }

// PlanckMass returns the Planck mass, in kg.
func PlanckMass() codata.Constant { return planckMass }

// PlanckMassEnergyEquivalentInGeV returns the Planck mass energy equivalent in GeV.
func PlanckMassEnergyEquivalentInGeV() codata.Constant { return planckMassEnergyEquivalentInGeV }

// PlanckTemperature returns the Planck temperature, in K.
func PlanckTemperature() codata.Constant { return planckTemperature }

// PlanckTime returns the Planck time, in s.
func PlanckTime() codata.Constant { return planckTime }

// ProtonChargeToMassQuotient returns the proton charge to mass quotient, in C kg^-1.
func ProtonChargeToMassQuotient() codata.Constant { return protonChargeToMassQuotient }

// ProtonComptonWavelength returns the proton Compton wavelength, in m.
func ProtonComptonWavelength() codata.Constant { return protonComptonWavelength }

// ProtonElectronMassRatio returns the proton-electron mass ratio (dimensionless).
func ProtonElectronMassRatio() codata.Constant { return protonElectronMassRatio }

// ProtonGFactor returns the proton g factor (dimensionless).
func ProtonGFactor() codata.Constant { return protonGFactor }

// ProtonGyromagRatio returns the proton gyromag. ratio, in s^-1 T^-1.
func ProtonGyromagRatio() codata.Constant { return protonGyromagRatio }

// ProtonGyromagRatioInMHzT returns the proton gyromag. ratio in MHz/T.
func ProtonGyromagRatioInMHzT() codata.Constant { return protonGyromagRatioInMHzT }

// ProtonMagMom returns the proton mag. mom., in J T^-1.
func ProtonMagMom() codata.Constant { return protonMagMom }

// ProtonMagMomToBohrMagnetonRatio returns the proton mag. mom. to Bohr magneton ratio (dimensionless).
func ProtonMagMomToBohrMagnetonRatio() codata.Constant { return protonMagMomToBohrMagnetonRatio }

// ProtonMagMomToNuclearMagnetonRatio returns the proton mag. mom. to nuclear magneton ratio (dimensionless).
func ProtonMagMomToNuclearMagnetonRatio() codata.Constant { return protonMagMomToNuclearMagnetonRatio }

// ProtonMagShieldingCorrection returns the proton mag. shielding correction (dimensionless).
func ProtonMagShieldingCorrection() codata.Constant { return protonMagShieldingCorrection }

// ProtonMass returns the proton mass, in kg.
func ProtonMass() codata.Constant { return protonMass }

// ProtonMassEnergyEquivalent returns the proton mass energy equivalent, in J.
func ProtonMassEnergyEquivalent() codata.Constant { return protonMassEnergyEquivalent }

// ProtonMassEnergyEquivalentInMeV returns the proton mass energy equivalent in MeV.
func ProtonMassEnergyEquivalentInMeV() codata.Constant { return protonMassEnergyEquivalentInMeV }

// ProtonMassInU returns the proton mass in u.
func ProtonMassInU() codata.Constant { return protonMassInU }

// ProtonMolarMass returns the proton molar mass, in kg mol^-1.
func ProtonMolarMass() codata.Constant { return protonMolarMass }

// ProtonMuonMassRatio returns the proton-muon mass ratio (dimensionless).
func ProtonMuonMassRatio() codata.Constant { return protonMuonMassRatio }

// ProtonNeutronMagMomRatio returns the proton-neutron mag. mom. ratio (dimensionless).
func ProtonNeutronMagMomRatio() codata.Constant { return protonNeutronMagMomRatio }

// ProtonNeutronMassRatio returns the proton-neutron mass ratio (dimensionless).
func ProtonNeutronMassRatio() codata.Constant { return protonNeutronMassRatio }

// ProtonRelativeAtomicMass returns the proton relative atomic mass (dimensionless).
func ProtonRelativeAtomicMass() codata.Constant { return protonRelativeAtomicMass }

// ProtonRmsChargeRadius returns the proton rms charge radius, in m.
func ProtonRmsChargeRadius() codata.Constant { return protonRmsChargeRadius }

// ProtonTauMassRatio returns the proton-tau mass ratio (dimensionless).
func ProtonTauMassRatio() codata.Constant { return protonTauMassRatio }

// QuantumOfCirculation returns the quantum of circulation, in m^2 s^-1.
func QuantumOfCirculation() codata.Constant { return quantumOfCirculation }

// QuantumOfCirculationTimes2 returns the quantum of circulation times 2, in m^2 s^-1.
func QuantumOfCirculationTimes2() codata.Constant { return quantumOfCirculationTimes2 }

// ReducedComptonWavelength returns the reduced Compton wavelength, in m.
func ReducedComptonWavelength() codata.Constant { return reducedComptonWavelength }

// ReducedMuonComptonWavelength returns the reduced muon Compton wavelength, in m.
func ReducedMuonComptonWavelength() codata.Constant { return reducedMuonComptonWavelength }

// ReducedNeutronComptonWavelength returns the reduced neutron Compton wavelength, in m.
func ReducedNeutronComptonWavelength() codata.Constant { return reducedNeutronComptonWavelength }

// ReducedPlanckConstant returns the reduced Planck constant, in J s, exact.
func ReducedPlanckConstant() codata.Constant { return reducedPlanckConstant }

// ReducedPlanckConstantInEVS returns the reduced Planck constant in eV s, exact.
func ReducedPlanckConstantInEVS() codata.Constant { return reducedPlanckConstantInEVS }

// ReducedPlanckConstantTimesCInMeVFm returns the reduced Planck constant times c in MeV fm, exact.
func ReducedPlanckConstantTimesCInMeVFm() codata.Constant { return reducedPlanckConstantTimesCInMeVFm }

// ReducedProtonComptonWavelength returns the reduced proton Compton wavelength, in m.
func ReducedProtonComptonWavelength() codata.Constant { return reducedProtonComptonWavelength }

// ReducedTauComptonWavelength returns the reduced tau Compton wavelength, in m.
func ReducedTauComptonWavelength() codata.Constant { return reducedTauComptonWavelength }

// RydbergConstant returns the Rydberg constant, in m^-1.
func RydbergConstant() codata.Constant { return rydbergConstant }

// RydbergConstantTimesCInHz returns the Rydberg constant times c in Hz.
func RydbergConstantTimesCInHz() codata.Constant { return rydbergConstantTimesCInHz }

// RydbergConstantTimesHcInEV returns the Rydberg constant times hc in eV.
func RydbergConstantTimesHcInEV() codata.Constant { return rydbergConstantTimesHcInEV }

// RydbergConstantTimesHcInJ returns the Rydberg constant times hc in J.
func RydbergConstantTimesHcInJ() codata.Constant { return rydbergConstantTimesHcInJ }

// SackurTetrodeConstant1K100KPa returns the Sackur-Tetrode constant (1 K, 100 kPa) (dimensionless).
func SackurTetrodeConstant1K100KPa() codata.Constant { return sackurTetrodeConstant1K100KPa }

// SackurTetrodeConstant1K101325KPa returns the Sackur-Tetrode constant (1 K, 101.325 kPa) (dimensionless).
func SackurTetrodeConstant1K101325KPa() codata.Constant { return sackurTetrodeConstant1K101325KPa }

// SecondRadiationConstant returns the second radiation constant, in m K, exact.
func SecondRadiationConstant() codata.Constant { return secondRadiationConstant }

// ShieldedHelionGyromagRatio returns the shielded helion gyromag. ratio, in s^-1 T^-1.
func ShieldedHelionGyromagRatio() codata.Constant { return shieldedHelionGyromagRatio }

// ShieldedHelionGyromagRatioInMHzT returns the shielded helion gyromag. ratio in MHz/T.
func ShieldedHelionGyromagRatioInMHzT() codata.Constant { return shieldedHelionGyromagRatioInMHzT }

// ShieldedHelionMagMom returns the shielded helion mag. mom., in J T^-1.
func ShieldedHelionMagMom() codata.Constant { return shieldedHelionMagMom }

// ShieldedHelionMagMomToBohrMagnetonRatio returns the shielded helion mag. mom. to Bohr magneton ratio (dimensionless).
func ShieldedHelionMagMomToBohrMagnetonRatio() codata.Constant { return shieldedHelionMagMomToBohrMagnetonRatio }

// ShieldedHelionMagMomToNuclearMagnetonRatio returns the shielded helion mag. mom. to nuclear magneton ratio (dimensionless).
func ShieldedHelionMagMomToNuclearMagnetonRatio() codata.Constant { return shieldedHelionMagMomToNuclearMagnetonRatio }

// ShieldedHelionToProtonMagMomRatio returns the shielded helion to proton mag. mom. ratio (dimensionless).
func ShieldedHelionToProtonMagMomRatio() codata.Constant { return shieldedHelionToProtonMagMomRatio }

// ShieldedHelionToShieldedProtonMagMomRatio returns the shielded helion to shielded proton mag. mom. ratio (dimensionless).
func ShieldedHelionToShieldedProtonMagMomRatio() codata.Constant { return shieldedHelionToShieldedProtonMagMomRatio }

// ShieldedProtonGyromagRatio returns the shielded proton gyromag. ratio, in s^-1 T^-1.
func ShieldedProtonGyromagRatio() codata.Constant { return shieldedProtonGyromagRatio }

// ShieldedProtonGyromagRatioInMHzT returns the shielded proton gyromag. ratio in MHz/T.
func ShieldedProtonGyromagRatioInMHzT() codata.Constant { return shieldedProtonGyromagRatioInMHzT }

// ShieldedProtonMagMom returns the shielded proton mag. mom., in J T^-1.
func ShieldedProtonMagMom() codata.Constant { return shieldedProtonMagMom }

// ShieldedProtonMagMomToBohrMagnetonRatio returns the shielded proton mag. mom. to Bohr magneton ratio (dimensionless).
func ShieldedProtonMagMomToBohrMagnetonRatio() codata.Constant { return shieldedProtonMagMomToBohrMagnetonRatio }

// ShieldedProtonMagMomToNuclearMagnetonRatio returns the shielded proton mag. mom. to nuclear magneton ratio (dimensionless).
func ShieldedProtonMagMomToNuclearMagnetonRatio() codata.Constant { return shieldedProtonMagMomToNuclearMagnetonRatio }

// ShieldingDifferenceOfDAndPInHD returns the shielding difference of d and p in HD (dimensionless).
func ShieldingDifferenceOfDAndPInHD() codata.Constant { return shieldingDifferenceOfDAndPInHD }

// ShieldingDifferenceOfTAndPInHT returns the shielding difference of t and p in HT (dimensionless).
func ShieldingDifferenceOfTAndPInHT() codata.Constant { return shieldingDifferenceOfTAndPInHT }

// SpeedOfLightInVacuum returns the speed of light in vacuum, exact.
func SpeedOfLightInVacuum() codata.Constant { return speedOfLightInVacuum }

// StandardAccelerationOfGravity returns the standard acceleration of gravity, in m s^-2, exact.
func StandardAccelerationOfGravity() codata.Constant { return standardAccelerationOfGravity }

// StandardAtmosphere returns the standard atmosphere, in Pa, exact.
func StandardAtmosphere() codata.Constant { return standardAtmosphere }

// StandardStatePressure returns the standard-state pressure, in Pa, exact.
func StandardStatePressure() codata.Constant { return standardStatePressure }

// StefanBoltzmannConstant returns the Stefan-Boltzmann constant, in W m^-2 K^-4, exact.
func StefanBoltzmannConstant() codata.Constant { return stefanBoltzmannConstant }

// TauComptonWavelength returns the tau Compton wavelength, in m.
func TauComptonWavelength() codata.Constant { return tauComptonWavelength }

// TauElectronMassRatio returns the tau-electron mass ratio (dimensionless).
func TauElectronMassRatio() codata.Constant { return tauElectronMassRatio }

// TauEnergyEquivalent returns the tau energy equivalent, in MeV.
func TauEnergyEquivalent() codata.Constant { return tauEnergyEquivalent }

// TauMass returns the tau mass, in kg.
func TauMass() codata.Constant { return tauMass }

// TauMassEnergyEquivalent returns the tau mass energy equivalent, in J.
func TauMassEnergyEquivalent() codata.Constant { return tauMassEnergyEquivalent }

// TauMassInU returns the tau mass in u.
func TauMassInU() codata.Constant { return tauMassInU }

// TauMolarMass returns the tau molar mass, in kg mol^-1.
func TauMolarMass() codata.Constant { return tauMolarMass }

// TauMuonMassRatio returns the tau-muon mass ratio (dimensionless).
func TauMuonMassRatio() codata.Constant { return tauMuonMassRatio }

// TauNeutronMassRatio returns the tau-neutron mass ratio (dimensionless).
func TauNeutronMassRatio() codata.Constant { return tauNeutronMassRatio }

// TauProtonMassRatio returns the tau-proton mass ratio (dimensionless).
func TauProtonMassRatio() codata.Constant { return tauProtonMassRatio }

// ThomsonCrossSection returns the Thomson cross section, in m^2.
func ThomsonCrossSection() codata.Constant { return thomsonCrossSection }

// TritonElectronMassRatio returns the triton-electron mass ratio (dimensionless).
func TritonElectronMassRatio() codata.Constant { return tritonElectronMassRatio }

// TritonGFactor returns the triton g factor (dimensionless).
func TritonGFactor() codata.Constant { return tritonGFactor }

// TritonMagMom returns the triton mag. mom., in J T^-1.
func TritonMagMom() codata.Constant { return tritonMagMom }

// TritonMagMomToBohrMagnetonRatio returns the triton mag. mom. to Bohr magneton ratio (dimensionless).
func TritonMagMomToBohrMagnetonRatio() codata.Constant { return tritonMagMomToBohrMagnetonRatio }

// TritonMagMomToNuclearMagnetonRatio returns the triton mag. mom. to nuclear magneton ratio (dimensionless).
func TritonMagMomToNuclearMagnetonRatio() codata.Constant { return tritonMagMomToNuclearMagnetonRatio }

// TritonMass returns the triton mass, in kg.
func TritonMass() codata.Constant { return tritonMass }

// TritonMassEnergyEquivalent returns the triton mass energy equivalent, in J.
func TritonMassEnergyEquivalent() codata.Constant { return tritonMassEnergyEquivalent }

// TritonMassEnergyEquivalentInMeV returns the triton mass energy equivalent in MeV.
func TritonMassEnergyEquivalentInMeV() codata.Constant { return tritonMassEnergyEquivalentInMeV }

// TritonMassInU returns the triton mass in u.
func TritonMassInU() codata.Constant { return tritonMassInU }

// TritonMolarMass returns the triton molar mass, in kg mol^-1.
func TritonMolarMass() codata.Constant { return tritonMolarMass }

// TritonProtonMassRatio returns the triton-proton mass ratio (dimensionless).
func TritonProtonMassRatio() codata.Constant { return tritonProtonMassRatio }

// TritonRelativeAtomicMass returns the triton relative atomic mass (dimensionless).
func TritonRelativeAtomicMass() codata.Constant { return tritonRelativeAtomicMass }

// TritonToProtonMagMomRatio returns the triton to proton mag. mom. ratio (dimensionless).
func TritonToProtonMagMomRatio() codata.Constant { return tritonToProtonMagMomRatio }

// UnifiedAtomicMassUnit returns the unified atomic mass unit, in kg.
func UnifiedAtomicMassUnit() codata.Constant { return unifiedAtomicMassUnit }

// VacuumElectricPermittivity returns the vacuum electric permittivity, in F m^-1.
func VacuumElectricPermittivity() codata.Constant { return vacuumElectricPermittivity }

// VacuumMagPermeability returns the vacuum mag. permeability, in N A^-2.
func VacuumMagPermeability() codata.Constant { return vacuumMagPermeability }

// VonKlitzingConstant returns the von Klitzing constant, in ohm, exact.
func VonKlitzingConstant() codata.Constant { return vonKlitzingConstant }

// WeakMixingAngle returns the weak mixing angle (dimensionless).
func WeakMixingAngle() codata.Constant { return weakMixingAngle }

// WienFrequencyDisplacementLawConstant returns the Wien frequency displacement law constant, in Hz K^-1, exact.
func WienFrequencyDisplacementLawConstant() codata.Constant { return wienFrequencyDisplacementLawConstant }

// WienWavelengthDisplacementLawConstant returns the Wien wavelength displacement law constant, in m K, exact.
func WienWavelengthDisplacementLawConstant() codata.Constant { return wienWavelengthDisplacementLawConstant }

// WToZMassRatio returns the W to Z mass ratio (dimensionless).
func WToZMassRatio() codata.Constant { return wToZMassRatio }

// table is built on first use.
var table = sync.OnceValue(func() *codata.Table {
	return codata.NewTable(Revision,
		alphaParticleElectronMassRatio,
		alphaParticleMass,
		alphaParticleMassEnergyEquivalent,
		alphaParticleMassEnergyEquivalentInMeV,
		alphaParticleMassInU,
		alphaParticleMolarMass,
		alphaParticleProtonMassRatio,
		alphaParticleRelativeAtomicMass,
		angstromStar,
		atomicMassConstant,
		atomicMassConstantEnergyEquivalent,
		atomicMassConstantEnergyEquivalentInMeV,
		atomicMassUnitElectronVoltRelationship,
		atomicMassUnitHartreeRelationship,
		atomicMassUnitHertzRelationship,
		atomicMassUnitInverseMeterRelationship,
		atomicMassUnitJouleRelationship,
		atomicMassUnitKelvinRelationship,
		atomicMassUnitKilogramRelationship,
		atomicUnitOf1stHyperpolarizability,
		atomicUnitOf2ndHyperpolarizability,
		atomicUnitOfAction,
		atomicUnitOfCharge,
		atomicUnitOfChargeDensity,
		atomicUnitOfCurrent,
		atomicUnitOfElectricDipoleMom,
		atomicUnitOfElectricField,
		atomicUnitOfElectricFieldGradient,
		atomicUnitOfElectricPolarizability,
		atomicUnitOfElectricPotential,
		atomicUnitOfElectricQuadrupoleMom,
		atomicUnitOfEnergy,
		atomicUnitOfForce,
		atomicUnitOfLength,
		atomicUnitOfMagDipoleMom,
		atomicUnitOfMagFluxDensity,
		atomicUnitOfMagnetizability,
		atomicUnitOfMass,
		atomicUnitOfMomentum,
		atomicUnitOfPermittivity,
		atomicUnitOfTime,
		atomicUnitOfVelocity,
		avogadroConstant,
		bohrMagneton,
		bohrMagnetonInEVT,
		bohrMagnetonInHzT,
		bohrMagnetonInInverseMeterPerTesla,
		bohrMagnetonInKT,
		bohrRadius,
		boltzmannConstant,
		boltzmannConstantInEVK,
		boltzmannConstantInHzK,
		boltzmannConstantInInverseMeterPerKelvin,
		characteristicImpedanceOfVacuum,
		classicalElectronRadius,
		comptonWavelength,
		conductanceQuantum,
		conventionalValueOfAmpere90,
		conventionalValueOfCoulomb90,
		conventionalValueOfFarad90,
		conventionalValueOfHenry90,
		conventionalValueOfJosephsonConstant,
		conventionalValueOfOhm90,
		conventionalValueOfVolt90,
		conventionalValueOfVonKlitzingConstant,
		conventionalValueOfWatt90,
		copperXUnit,
		deuteronElectronMagMomRatio,
		deuteronElectronMassRatio,
		deuteronGFactor,
		deuteronMagMom,
		deuteronMagMomToBohrMagnetonRatio,
		deuteronMagMomToNuclearMagnetonRatio,
		deuteronMass,
		deuteronMassEnergyEquivalent,
		deuteronMassEnergyEquivalentInMeV,
		deuteronMassInU,
		deuteronMolarMass,
		deuteronNeutronMagMomRatio,
		deuteronProtonMagMomRatio,
		deuteronProtonMassRatio,
		deuteronRelativeAtomicMass,
		deuteronRmsChargeRadius,
		electronChargeToMassQuotient,
		electronDeuteronMagMomRatio,
		electronDeuteronMassRatio,
		electronGFactor,
		electronGyromagRatio,
		electronGyromagRatioInMHzT,
		electronHelionMassRatio,
		electronMagMom,
		electronMagMomAnomaly,
		electronMagMomToBohrMagnetonRatio,
		electronMagMomToNuclearMagnetonRatio,
		electronMass,
		electronMassEnergyEquivalent,
		electronMassEnergyEquivalentInMeV,
		electronMassInU,
		electronMolarMass,
		electronMuonMagMomRatio,
		electronMuonMassRatio,
		electronNeutronMagMomRatio,
		electronNeutronMassRatio,
		electronProtonMagMomRatio,
		electronProtonMassRatio,
		electronRelativeAtomicMass,
		electronTauMassRatio,
		electronToAlphaParticleMassRatio,
		electronToShieldedHelionMagMomRatio,
		electronToShieldedProtonMagMomRatio,
		electronTritonMassRatio,
		electronVolt,
		electronVoltAtomicMassUnitRelationship,
		electronVoltHartreeRelationship,
		electronVoltHertzRelationship,
		electronVoltInverseMeterRelationship,
		electronVoltJouleRelationship,
		electronVoltKelvinRelationship,
		electronVoltKilogramRelationship,
		elementaryCharge,
		elementaryChargeOverHBar,
		faradayConstant,
		fermiCouplingConstant,
		fineStructureConstant,
		firstRadiationConstant,
		firstRadiationConstantForSpectralRadiance,
		hartreeAtomicMassUnitRelationship,
		hartreeElectronVoltRelationship,
		hartreeEnergy,
		hartreeEnergyInEV,
		hartreeHertzRelationship,
		hartreeInverseMeterRelationship,
		hartreeJouleRelationship,
		hartreeKelvinRelationship,
		hartreeKilogramRelationship,
		helionElectronMassRatio,
		helionGFactor,
		helionMagMom,
		helionMagMomToBohrMagnetonRatio,
		helionMagMomToNuclearMagnetonRatio,
		helionMass,
		helionMassEnergyEquivalent,
		helionMassEnergyEquivalentInMeV,
		helionMassInU,
		helionMolarMass,
		helionProtonMassRatio,
		helionRelativeAtomicMass,
		helionShieldingShift,
		hertzAtomicMassUnitRelationship,
		hertzElectronVoltRelationship,
		hertzHartreeRelationship,
		hertzInverseMeterRelationship,
		hertzJouleRelationship,
		hertzKelvinRelationship,
		hertzKilogramRelationship,
		hyperfineTransitionFrequencyOfCs133,
		inverseFineStructureConstant,
		inverseMeterAtomicMassUnitRelationship,
		inverseMeterElectronVoltRelationship,
		inverseMeterHartreeRelationship,
		inverseMeterHertzRelationship,
		inverseMeterJouleRelationship,
		inverseMeterKelvinRelationship,
		inverseMeterKilogramRelationship,
		inverseOfConductanceQuantum,
		josephsonConstant,
		jouleAtomicMassUnitRelationship,
		jouleElectronVoltRelationship,
		jouleHartreeRelationship,
		jouleHertzRelationship,
		jouleInverseMeterRelationship,
		jouleKelvinRelationship,
		jouleKilogramRelationship,
		kelvinAtomicMassUnitRelationship,
		kelvinElectronVoltRelationship,
		kelvinHartreeRelationship,
		kelvinHertzRelationship,
		kelvinInverseMeterRelationship,
		kelvinJouleRelationship,
		kelvinKilogramRelationship,
		kilogramAtomicMassUnitRelationship,
		kilogramElectronVoltRelationship,
		kilogramHartreeRelationship,
		kilogramHertzRelationship,
		kilogramInverseMeterRelationship,
		kilogramJouleRelationship,
		kilogramKelvinRelationship,
		latticeParameterOfSilicon,
		latticeSpacingOfIdealSi220,
		loschmidtConstant27315K100KPa,
		loschmidtConstant27315K101325KPa,
		luminousEfficacy,
		magFluxQuantum,
		molarGasConstant,
		molarMassConstant,
		molarMassOfCarbon12,
		molarPlanckConstant,
		molarVolumeOfIdealGas27315K100KPa,
		molarVolumeOfIdealGas27315K101325KPa,
		molarVolumeOfSilicon,
		molybdenumXUnit,
		muonComptonWavelength,
		muonElectronMassRatio,
		muonGFactor,
		muonMagMom,
		muonMagMomAnomaly,
		muonMagMomToBohrMagnetonRatio,
		muonMagMomToNuclearMagnetonRatio,
		muonMass,
		muonMassEnergyEquivalent,
		muonMassEnergyEquivalentInMeV,
		muonMassInU,
		muonMolarMass,
		muonNeutronMassRatio,
		muonProtonMagMomRatio,
		muonProtonMassRatio,
		muonTauMassRatio,
		naturalUnitOfAction,
		naturalUnitOfActionInEVS,
		naturalUnitOfEnergy,
		naturalUnitOfEnergyInMeV,
		naturalUnitOfLength,
		naturalUnitOfMass,
		naturalUnitOfMomentum,
		naturalUnitOfMomentumInMeVC,
		naturalUnitOfTime,
		naturalUnitOfVelocity,
		neutronComptonWavelength,
		neutronElectronMagMomRatio,
		neutronElectronMassRatio,
		neutronGFactor,
		neutronGyromagRatio,
		neutronGyromagRatioInMHzT,
		neutronMagMom,
		neutronMagMomToBohrMagnetonRatio,
		neutronMagMomToNuclearMagnetonRatio,
		neutronMass,
		neutronMassEnergyEquivalent,
		neutronMassEnergyEquivalentInMeV,
		neutronMassInU,
		neutronMolarMass,
		neutronMuonMassRatio,
		neutronProtonMagMomRatio,
		neutronProtonMassDifference,
		neutronProtonMassDifferenceEnergyEquivalent,
		neutronProtonMassDifferenceEnergyEquivalentInMeV,
		neutronProtonMassDifferenceInU,
		neutronProtonMassRatio,
		neutronRelativeAtomicMass,
		neutronTauMassRatio,
		neutronToShieldedProtonMagMomRatio,
		newtonianConstantOfGravitation,
		newtonianConstantOfGravitationOverHBarC,
		nuclearMagneton,
		nuclearMagnetonInEVT,
		nuclearMagnetonInInverseMeterPerTesla,
		nuclearMagnetonInKT,
		nuclearMagnetonInMHzT,
		planckConstant,
		planckConstantInEVHz,
		planckLength,
		planckMass,
		planckMassEnergyEquivalentInGeV,
		planckTemperature,
		planckTime,
		protonChargeToMassQuotient,
		protonComptonWavelength,
		protonElectronMassRatio,
		protonGFactor,
		protonGyromagRatio,
		protonGyromagRatioInMHzT,
		protonMagMom,
		protonMagMomToBohrMagnetonRatio,
		protonMagMomToNuclearMagnetonRatio,
		protonMagShieldingCorrection,
		protonMass,
		protonMassEnergyEquivalent,
		protonMassEnergyEquivalentInMeV,
		protonMassInU,
		protonMolarMass,
		protonMuonMassRatio,
		protonNeutronMagMomRatio,
		protonNeutronMassRatio,
		protonRelativeAtomicMass,
		protonRmsChargeRadius,
		protonTauMassRatio,
		quantumOfCirculation,
		quantumOfCirculationTimes2,
		reducedComptonWavelength,
		reducedMuonComptonWavelength,
		reducedNeutronComptonWavelength,
		reducedPlanckConstant,
		reducedPlanckConstantInEVS,
		reducedPlanckConstantTimesCInMeVFm,
		reducedProtonComptonWavelength,
		reducedTauComptonWavelength,
		rydbergConstant,
		rydbergConstantTimesCInHz,
		rydbergConstantTimesHcInEV,
		rydbergConstantTimesHcInJ,
		sackurTetrodeConstant1K100KPa,
		sackurTetrodeConstant1K101325KPa,
		secondRadiationConstant,
		shieldedHelionGyromagRatio,
		shieldedHelionGyromagRatioInMHzT,
		shieldedHelionMagMom,
		shieldedHelionMagMomToBohrMagnetonRatio,
		shieldedHelionMagMomToNuclearMagnetonRatio,
		shieldedHelionToProtonMagMomRatio,
		shieldedHelionToShieldedProtonMagMomRatio,
		shieldedProtonGyromagRatio,
		shieldedProtonGyromagRatioInMHzT,
		shieldedProtonMagMom,
		shieldedProtonMagMomToBohrMagnetonRatio,
		shieldedProtonMagMomToNuclearMagnetonRatio,
		shieldingDifferenceOfDAndPInHD,
		shieldingDifferenceOfTAndPInHT,
		speedOfLightInVacuum,
		standardAccelerationOfGravity,
		standardAtmosphere,
		standardStatePressure,
		stefanBoltzmannConstant,
		tauComptonWavelength,
		tauElectronMassRatio,
		tauEnergyEquivalent,
		tauMass,
		tauMassEnergyEquivalent,
		tauMassInU,
		tauMolarMass,
		tauMuonMassRatio,
		tauNeutronMassRatio,
		tauProtonMassRatio,
		thomsonCrossSection,
		tritonElectronMassRatio,
		tritonGFactor,
		tritonMagMom,
		tritonMagMomToBohrMagnetonRatio,
		tritonMagMomToNuclearMagnetonRatio,
		tritonMass,
		tritonMassEnergyEquivalent,
		tritonMassEnergyEquivalentInMeV,
		tritonMassInU,
		tritonMolarMass,
		tritonProtonMassRatio,
		tritonRelativeAtomicMass,
		tritonToProtonMagMomRatio,
		unifiedAtomicMassUnit,
		vacuumElectricPermittivity,
		vacuumMagPermeability,
		vonKlitzingConstant,
		weakMixingAngle,
		wienFrequencyDisplacementLawConstant,
		wienWavelengthDisplacementLawConstant,
		wToZMassRatio,
	)
})

// Table returns every constant of the revision in publication order.
// Every call returns the same read-only table.
func Table() *codata.Table { return table() }

// Lookup finds a constant of this revision by its published name or key.
func Lookup(name string) (codata.Constant, error) {
	return table().Lookup(name)
}
