package codata2006

import (
	"sync"

	"github.com/katalvlaran/codata"
)

// Revision is the CODATA adjustment these values were published in.
const Revision = 2006

var (
	latticeSpacingOfSilicon                       = codata.New("lattice spacing of silicon", 1.920155762e-10, 5e-18, "m")
	alphaParticleElectronMassRatio                = codata.New("alpha particle-electron mass ratio", 7294.2995365, 3.1e-06, "")
	alphaParticleMass                             = codata.New("alpha particle mass", 6.6446562e-27, 3.3e-34, "kg")
	alphaParticleMassEnergyEquivalent             = codata.New("alpha particle mass energy equivalent", 5.97191917e-10, 3e-17, "J")
	alphaParticleMassEnergyEquivalentInMeV        = codata.New("alpha particle mass energy equivalent in MeV", 3727.379109, 9.3e-05, "MeV")
	alphaParticleMassInU                          = codata.New("alpha particle mass in u", 4.001506179127, 6.2e-11, "u")
	alphaParticleMolarMass                        = codata.New("alpha particle molar mass", 0.004001506179127, 6.2e-14, "kg mol^-1")
	alphaParticleProtonMassRatio                  = codata.New("alpha particle-proton mass ratio", 3.97259968951, 4.1e-10, "")
	angstromStar                                  = codata.New("Angstrom star", 1.00001498e-10, 9e-17, "m")
	atomicMassConstant                            = codata.New("atomic mass constant", 1.660538782e-27, 8.3e-35, "kg")
	atomicMassConstantEnergyEquivalent            = codata.New("atomic mass constant energy equivalent", 1.49241783e-10, 7.4e-18, "J")
	atomicMassConstantEnergyEquivalentInMeV       = codata.New("atomic mass constant energy equivalent in MeV", 931.494028, 2.3e-05, "MeV")
	atomicMassUnitElectronVoltRelationship        = codata.New("atomic mass unit-electron volt relationship", 9.31494028e+08, 23, "eV")
	atomicMassUnitHartreeRelationship             = codata.New("atomic mass unit-hartree relationship", 3.4231777149e+07, 0.049, "E_h")
	atomicMassUnitHertzRelationship               = codata.New("atomic mass unit-hertz relationship", 2.2523427369e+23, 3.2e+14, "Hz")
	atomicMassUnitInverseMeterRelationship        = codata.New("atomic mass unit-inverse meter relationship", 7.513006671e+14, 1.1e+06, "m^-1")
	atomicMassUnitJouleRelationship               = codata.New("atomic mass unit-joule relationship", 1.49241783e-10, 7.4e-18, "J")
	atomicMassUnitKelvinRelationship              = codata.New("atomic mass unit-kelvin relationship", 1.0809527e+13, 1.9e+07, "K")
	atomicMassUnitKilogramRelationship            = codata.New("atomic mass unit-kilogram relationship", 1.660538782e-27, 8.3e-35, "kg")
	atomicUnitOf1stHyperpolarizability            = codata.New("atomic unit of 1st hyperpolarizability", 3.206361533e-53, 8.1e-61, "C^3 m^3 J^-2")
	atomicUnitOf2ndHyperpolarizability            = codata.New("atomic unit of 2nd hyperpolarizability", 6.23538095e-65, 3.1e-72, "C^4 m^4 J^-3")
	atomicUnitOfAction                            = codata.New("atomic unit of action", 1.054571628e-34, 5.3e-42, "J s")
	atomicUnitOfCharge                            = codata.New("atomic unit of charge", 1.602176487e-19, 4e-27, "C")
	atomicUnitOfChargeDensity                     = codata.New("atomic unit of charge density", 1.0812023e+12, 27000, "C m^-3")
	atomicUnitOfCurrent                           = codata.New("atomic unit of current", 0.00662361763, 1.7e-10, "A")
	atomicUnitOfElectricDipoleMom                 = codata.New("atomic unit of electric dipole mom.", 8.47835281e-30, 2.1e-37, "C m")
	atomicUnitOfElectricField                     = codata.New("atomic unit of electric field", 5.14220632e+11, 13000, "V m^-1")
	atomicUnitOfElectricFieldGradient             = codata.New("atomic unit of electric field gradient", 9.71736166e+21, 2.4e+14, "V m^-2")
	atomicUnitOfElectricPolarizability            = codata.New("atomic unit of electric polarizability", 1.6487772536e-41, 3.4e-50, "C^2 m^2 J^-1")
	atomicUnitOfElectricPotential                 = codata.New("atomic unit of electric potential", 27.21138386, 6.8e-07, "V")
	atomicUnitOfElectricQuadrupoleMom             = codata.New("atomic unit of electric quadrupole mom.", 4.48655107e-40, 1.1e-47, "C m^2")
	atomicUnitOfEnergy                            = codata.New("atomic unit of energy", 4.35974394e-18, 2.2e-25, "J")
	atomicUnitOfForce                             = codata.New("atomic unit of force", 8.23872206e-08, 4.1e-15, "N")
	atomicUnitOfLength                            = codata.New("atomic unit of length", 5.2917720859e-11, 3.6e-20, "m")
	atomicUnitOfMagDipoleMom                      = codata.New("atomic unit of mag. dipole mom.", 1.85480183e-23, 4.6e-31, "J T^-1")
	atomicUnitOfMagFluxDensity                    = codata.New("atomic unit of mag. flux density", 235051.7382, 0.0059, "T")
	atomicUnitOfMagnetizability                   = codata.New("atomic unit of magnetizability", 7.891036433e-29, 2.7e-37, "J T^-2")
	atomicUnitOfMass                              = codata.New("atomic unit of mass", 9.10938215e-31, 4.5e-38, "kg")
	atomicUnitOfMomentum                          = codata.New("atomic unit of momentum", 1.992851565e-24, 9.9e-32, "kg m s^-1")
	atomicUnitOfPermittivity                      = codata.New("atomic unit of permittivity", 1.112650056e-10, 0, "F m^-1")
	atomicUnitOfTime                              = codata.New("atomic unit of time", 2.418884326505e-17, 1.6e-28, "s")
	atomicUnitOfVelocity                          = codata.New("atomic unit of velocity", 2.1876912541e+06, 0.0015, "m s^-1")
	avogadroConstant                              = codata.New("Avogadro constant", 6.02214179e+23, 3e+16, "mol^-1")
	bohrMagneton                                  = codata.New("Bohr magneton", 9.27400915e-24, 2.3e-31, "J T^-1")
	bohrMagnetonInEVT                             = codata.New("Bohr magneton in eV/T", 5.7883817555e-05, 7.9e-14, "eV T^-1")
	bohrMagnetonInHzT                             = codata.New("Bohr magneton in Hz/T", 1.399624604e+10, 350, "Hz T^-1")
	bohrMagnetonInInverseMetersPerTesla           = codata.New("Bohr magneton in inverse meters per tesla", 46.6864515, 1.2e-06, "m^-1 T^-1")
	bohrMagnetonInKT                              = codata.New("Bohr magneton in K/T", 0.6717131, 1.2e-06, "K T^-1")
	bohrRadius                                    = codata.New("Bohr radius", 5.2917720859e-11, 3.6e-20, "m")
	boltzmannConstant                             = codata.New("Boltzmann constant", 1.3806504e-23, 2.4e-29, "J K^-1")
	boltzmannConstantInEVK                        = codata.New("Boltzmann constant in eV/K", 8.617343e-05, 1.5e-10, "eV K^-1")
	boltzmannConstantInHzK                        = codata.New("Boltzmann constant in Hz/K", 2.0836644e+10, 36000, "Hz K^-1")
	boltzmannConstantInInverseMetersPerKelvin     = codata.New("Boltzmann constant in inverse meters per kelvin", 69.50356, 0.00012, "m^-1 K^-1")
	characteristicImpedanceOfVacuum               = codata.New("characteristic impedance of vacuum", 376.730313461, 0, "ohm")
	classicalElectronRadius                       = codata.New("classical electron radius", 2.8179402894e-15, 5.8e-24, "m")
	comptonWavelength                             = codata.New("Compton wavelength", 2.4263102175e-12, 3.3e-21, "m")
	comptonWavelengthOver2Pi                      = codata.New("Compton wavelength over 2 pi", 3.8615926459e-13, 5.3e-22, "m")
	conductanceQuantum                            = codata.New("conductance quantum", 7.7480917004e-05, 5.3e-14, "S")
	conventionalValueOfJosephsonConstant          = codata.New("conventional value of Josephson constant", 4.835979e+14, 0, "Hz V^-1")
	conventionalValueOfVonKlitzingConstant        = codata.New("conventional value of von Klitzing constant", 25812.807, 0, "ohm")
	cuXUnit                                       = codata.New("Cu x unit", 1.00207699e-13, 2.8e-20, "m")
	deuteronElectronMagMomRatio                   = codata.New("deuteron-electron mag. mom. ratio", -0.0004664345537, 3.9e-12, "")
	deuteronElectronMassRatio                     = codata.New("deuteron-electron mass ratio", 3670.4829654, 1.6e-06, "")
	deuteronGFactor                               = codata.New("deuteron g factor", 0.8574382308, 7.2e-09, "")
	deuteronMagMom                                = codata.New("deuteron mag. mom.", 4.33073465e-27, 1.1e-34, "J T^-1")
	deuteronMagMomToBohrMagnetonRatio             = codata.New("deuteron mag. mom. to Bohr magneton ratio", 0.0004669754556, 3.9e-12, "")
	deuteronMagMomToNuclearMagnetonRatio          = codata.New("deuteron mag. mom. to nuclear magneton ratio", 0.8574382308, 7.2e-09, "")
	deuteronMass                                  = codata.New("deuteron mass", 3.3435832e-27, 1.7e-34, "kg")
	deuteronMassEnergyEquivalent                  = codata.New("deuteron mass energy equivalent", 3.00506272e-10, 1.5e-17, "J")
	deuteronMassEnergyEquivalentInMeV             = codata.New("deuteron mass energy equivalent in MeV", 1875.612793, 4.7e-05, "MeV")
	deuteronMassInU                               = codata.New("deuteron mass in u", 2.013553212724, 7.8e-11, "u")
	deuteronMolarMass                             = codata.New("deuteron molar mass", 0.002013553212724, 7.8e-14, "kg mol^-1")
	deuteronNeutronMagMomRatio                    = codata.New("deuteron-neutron mag. mom. ratio", -0.44820652, 1.1e-07, "")
	deuteronProtonMagMomRatio                     = codata.New("deuteron-proton mag. mom. ratio", 0.307012207, 2.4e-09, "")
	deuteronProtonMassRatio                       = codata.New("deuteron-proton mass ratio", 1.99900750108, 2.2e-10, "")
	deuteronRmsChargeRadius                       = codata.New("deuteron rms charge radius", 2.1402e-15, 2.8e-18, "m")
	electricConstant                              = codata.New("electric constant", 8.854187817e-12, 0, "F m^-1")
	electronChargeToMassQuotient                  = codata.New("electron charge to mass quotient", -1.75882015e+11, 4400, "C kg^-1")
	electronDeuteronMagMomRatio                   = codata.New("electron-deuteron mag. mom. ratio", -2143.923498, 1.8e-05, "")
	electronDeuteronMassRatio                     = codata.New("electron-deuteron mass ratio", 0.00027244371093, 1.2e-13, "")
	electronGFactor                               = codata.New("electron g factor", -2.0023193043622, 1.5e-12, "")
	electronGyromagRatio                          = codata.New("electron gyromag. ratio", 1.76085977e+11, 4400, "s^-1 T^-1")
	electronGyromagRatioOver2Pi                   = codata.New("electron gyromag. ratio over 2 pi", 28024.95364, 0.0007, "MHz T^-1")
	electronMagMom                                = codata.New("electron mag. mom.", -9.28476377e-24, 2.3e-31, "J T^-1")
	electronMagMomAnomaly                         = codata.New("electron mag. mom. anomaly", 0.00115965218111, 7.4e-13, "")
	electronMagMomToBohrMagnetonRatio             = codata.New("electron mag. mom. to Bohr magneton ratio", -1.00115965218111, 7.4e-13, "")
	electronMagMomToNuclearMagnetonRatio          = codata.New("electron mag. mom. to nuclear magneton ratio", -1838.28197092, 8e-07, "")
	electronMass                                  = codata.New("electron mass", 9.10938215e-31, 4.5e-38, "kg")
	electronMassEnergyEquivalent                  = codata.New("electron mass energy equivalent", 8.18710438e-14, 4.1e-21, "J")
	electronMassEnergyEquivalentInMeV             = codata.New("electron mass energy equivalent in MeV", 0.51099891, 1.3e-08, "MeV")
	electronMassInU                               = codata.New("electron mass in u", 0.00054857990943, 2.3e-13, "u")
	electronMolarMass                             = codata.New("electron molar mass", 5.4857990943e-07, 2.3e-16, "kg mol^-1")
	electronMuonMagMomRatio                       = codata.New("electron-muon mag. mom. ratio", 206.7669877, 5.2e-06, "")
	electronMuonMassRatio                         = codata.New("electron-muon mass ratio", 0.00483633171, 1.2e-10, "")
	electronNeutronMagMomRatio                    = codata.New("electron-neutron mag. mom. ratio", 960.9205, 0.00023, "")
	electronNeutronMassRatio                      = codata.New("electron-neutron mass ratio", 0.00054386734459, 3.3e-13, "")
	electronProtonMagMomRatio                     = codata.New("electron-proton mag. mom. ratio", -658.2106848, 5.4e-06, "")
	electronProtonMassRatio                       = codata.New("electron-proton mass ratio", 0.00054461702177, 2.4e-13, "")
	electronTauMassRatio                          = codata.New("electron-tau mass ratio", 0.000287564, 4.7e-08, "")
	electronToAlphaParticleMassRatio              = codata.New("electron to alpha particle mass ratio", 0.00013709335557, 5.8e-14, "")
	electronToShieldedHelionMagMomRatio           = codata.New("electron to shielded helion mag. mom. ratio", 864.058257, 1e-05, "")
	electronToShieldedProtonMagMomRatio           = codata.New("electron to shielded proton mag. mom. ratio", -658.2275971, 7.2e-06, "")
	electronVolt                                  = codata.New("electron volt", 1.602176487e-19, 4e-27, "J")
	electronVoltAtomicMassUnitRelationship        = codata.New("electron volt-atomic mass unit relationship", 1.073544188e-09, 2.7e-17, "u")
	electronVoltHartreeRelationship               = codata.New("electron volt-hartree relationship", 0.0367493254, 9.2e-10, "E_h")
	electronVoltHertzRelationship                 = codata.New("electron volt-hertz relationship", 2.417989454e+14, 6e+06, "Hz")
	electronVoltInverseMeterRelationship          = codata.New("electron volt-inverse meter relationship", 806554.465, 0.02, "m^-1")
	electronVoltJouleRelationship                 = codata.New("electron volt-joule relationship", 1.602176487e-19, 4e-27, "J")
	electronVoltKelvinRelationship                = codata.New("electron volt-kelvin relationship", 11604.505, 0.02, "K")
	electronVoltKilogramRelationship              = codata.New("electron volt-kilogram relationship", 1.782661758e-36, 4.4e-44, "kg")
	elementaryCharge                              = codata.New("elementary charge", 1.602176487e-19, 4e-27, "C")
	elementaryChargeOverH                         = codata.New("elementary charge over h", 2.417989454e+14, 6e+06, "A J^-1")
	faradayConstant                               = codata.New("Faraday constant", 96485.3399, 0.0024, "C mol^-1")
	faradayConstantForConventionalElectricCurrent = codata.New("Faraday constant for conventional electric current", 96485.3401, 0.0048, "C_90 mol^-1")
	fermiCouplingConstant                         = codata.New("Fermi coupling constant", 1.16637e-05, 1e-10, "GeV^-2")
	fineStructureConstant                         = codata.New("fine-structure constant", 0.0072973525376, 5e-12, "")
	firstRadiationConstant                        = codata.New("first radiation constant", 3.74177118e-16, 1.9e-23, "W m^2")
	firstRadiationConstantForSpectralRadiance     = codata.New("first radiation constant for spectral radiance", 1.191042759e-16, 5.9e-24, "W m^2 sr^-1")
	hartreeAtomicMassUnitRelationship             = codata.New("hartree-atomic mass unit relationship", 2.9212622986e-08, 4.2e-17, "u")
	hartreeElectronVoltRelationship               = codata.New("hartree-electron volt relationship", 27.21138386, 6.8e-07, "eV")
	hartreeEnergy                                 = codata.New("Hartree energy", 4.35974394e-18, 2.2e-25, "J")
	hartreeEnergyInEV                             = codata.New("Hartree energy in eV", 27.21138386, 6.8e-07, "eV")
	hartreeHertzRelationship                      = codata.New("hartree-hertz relationship", 6.579683920722e+15, 44000, "Hz")
	hartreeInverseMeterRelationship               = codata.New("hartree-inverse meter relationship", 2.194746313705e+07, 0.00015, "m^-1")
	hartreeJouleRelationship                      = codata.New("hartree-joule relationship", 4.35974394e-18, 2.2e-25, "J")
	hartreeKelvinRelationship                     = codata.New("hartree-kelvin relationship", 315774.65, 0.55, "K")
	hartreeKilogramRelationship                   = codata.New("hartree-kilogram relationship", 4.85086934e-35, 2.4e-42, "kg")
	helionElectronMassRatio                       = codata.New("helion-electron mass ratio", 5495.8852765, 5.2e-06, "")
	helionMass                                    = codata.New("helion mass", 5.00641192e-27, 2.5e-34, "kg")
	helionMassEnergyEquivalent                    = codata.New("helion mass energy equivalent", 4.49953864e-10, 2.2e-17, "J")
	helionMassEnergyEquivalentInMeV               = codata.New("helion mass energy equivalent in MeV", 2808.391383, 7e-05, "MeV")
	helionMassInU                                 = codata.New("helion mass in u", 3.0149322473, 2.6e-09, "u")
	helionMolarMass                               = codata.New("helion molar mass", 0.0030149322473, 2.6e-12, "kg mol^-1")
	helionProtonMassRatio                         = codata.New("helion-proton mass ratio", 2.9931526713, 2.6e-09, "")
	hertzAtomicMassUnitRelationship               = codata.New("hertz-atomic mass unit relationship", 4.4398216294e-24, 6.4e-33, "u")
	hertzElectronVoltRelationship                 = codata.New("hertz-electron volt relationship", 4.13566733e-15, 1e-22, "eV")
	hertzHartreeRelationship                      = codata.New("hertz-hartree relationship", 1.519829846006e-16, 1e-27, "E_h")
	hertzInverseMeterRelationship                 = codata.New("hertz-inverse meter relationship", 3.335640951e-09, 0, "m^-1")
	hertzJouleRelationship                        = codata.New("hertz-joule relationship", 6.62606896e-34, 3.3e-41, "J")
	hertzKelvinRelationship                       = codata.New("hertz-kelvin relationship", 4.7992374e-11, 8.4e-17, "K")
	hertzKilogramRelationship                     = codata.New("hertz-kilogram relationship", 7.372496e-51, 3.7e-58, "kg")
	inverseFineStructureConstant                  = codata.New("inverse fine-structure constant", 137.035999679, 9.4e-08, "")
	inverseMeterAtomicMassUnitRelationship        = codata.New("inverse meter-atomic mass unit relationship", 1.3310250394e-15, 1.9e-24, "u")
	inverseMeterElectronVoltRelationship          = codata.New("inverse meter-electron volt relationship", 1.239841875e-06, 3.1e-14, "eV")
	inverseMeterHartreeRelationship               = codata.New("inverse meter-hartree relationship", 4.55633525276e-08, 3e-19, "E_h")
	inverseMeterHertzRelationship                 = codata.New("inverse meter-hertz relationship", 2.99792458e+08, 0, "Hz")
	inverseMeterJouleRelationship                 = codata.New("inverse meter-joule relationship", 1.986445501e-25, 9.9e-33, "J")
	inverseMeterKelvinRelationship                = codata.New("inverse meter-kelvin relationship", 0.014387752, 2.5e-08, "K")
	inverseMeterKilogramRelationship              = codata.New("inverse meter-kilogram relationship", 2.2102187e-42, 1.1e-49, "kg")
	inverseOfConductanceQuantum                   = codata.New("inverse of conductance quantum", 12906.4037787, 8.8e-06, "ohm")
	josephsonConstant                             = codata.New("Josephson constant", 4.83597891e+14, 1.2e+07, "Hz V^-1")
	jouleAtomicMassUnitRelationship               = codata.New("joule-atomic mass unit relationship", 6.70053641e+09, 330, "u")
	jouleElectronVoltRelationship                 = codata.New("joule-electron volt relationship", 6.24150965e+18, 1.6e+11, "eV")
	jouleHartreeRelationship                      = codata.New("joule-hartree relationship", 2.29371269e+17, 1.1e+10, "E_h")
	jouleHertzRelationship                        = codata.New("joule-hertz relationship", 1.50919045e+33, 7.5e+25, "Hz")
	jouleInverseMeterRelationship                 = codata.New("joule-inverse meter relationship", 5.03411747e+24, 2.5e+17, "m^-1")
	jouleKelvinRelationship                       = codata.New("joule-kelvin relationship", 7.242963e+22, 1.3e+17, "K")
	jouleKilogramRelationship                     = codata.New("joule-kilogram relationship", 1.112650056e-17, 0, "kg")
	kelvinAtomicMassUnitRelationship              = codata.New("kelvin-atomic mass unit relationship", 9.251098e-14, 1.6e-19, "u")
	kelvinElectronVoltRelationship                = codata.New("kelvin-electron volt relationship", 8.617343e-05, 1.5e-10, "eV")
	kelvinHartreeRelationship                     = codata.New("kelvin-hartree relationship", 3.1668153e-06, 5.5e-12, "E_h")
	kelvinHertzRelationship                       = codata.New("kelvin-hertz relationship", 2.0836644e+10, 36000, "Hz")
	kelvinInverseMeterRelationship                = codata.New("kelvin-inverse meter relationship", 69.50356, 0.00012, "m^-1")
	kelvinJouleRelationship                       = codata.New("kelvin-joule relationship", 1.3806504e-23, 2.4e-29, "J")
	kelvinKilogramRelationship                    = codata.New("kelvin-kilogram relationship", 1.5361807e-40, 2.7e-46, "kg")
	kilogramAtomicMassUnitRelationship            = codata.New("kilogram-atomic mass unit relationship", 6.02214179e+26, 3e+19, "u")
	kilogramElectronVoltRelationship              = codata.New("kilogram-electron volt relationship", 5.60958912e+35, 1.4e+28, "eV")
	kilogramHartreeRelationship                   = codata.New("kilogram-hartree relationship", 2.06148616e+34, 1e+27, "E_h")
	kilogramHertzRelationship                     = codata.New("kilogram-hertz relationship", 1.356392733e+50, 6.8e+42, "Hz")
	kilogramInverseMeterRelationship              = codata.New("kilogram-inverse meter relationship", 4.52443915e+41, 2.3e+34, "m^-1")
	kilogramJouleRelationship                     = codata.New("kilogram-joule relationship", 8.987551787e+16, 0, "J")
	kilogramKelvinRelationship                    = codata.New("kilogram-kelvin relationship", 6.509651e+39, 1.1e+34, "K")
	latticeParameterOfSilicon                     = codata.New("lattice parameter of silicon", 5.43102064e-10, 1.4e-17, "m")
	loschmidtConstant27315K101325KPa              = codata.New("Loschmidt constant (273.15 K, 101.325 kPa)", 2.6867774e+25, 4.7e+19, "m^-3")
	magConstant                                   = codata.New("mag. constant", 1.2566370614e-06, 0, "N A^-2")
	magFluxQuantum                                = codata.New("mag. flux quantum", 2.067833667e-15, 5.2e-23, "Wb")
	molarGasConstant                              = codata.New("molar gas constant", 8.314472, 1.5e-05, "J mol^-1 K^-1")
	molarMassConstant                             = codata.New("molar mass constant", 0.001, 0, "kg mol^-1")
	molarMassOfCarbon12                           = codata.New("molar mass of carbon-12", 0.012, 0, "kg mol^-1")
	molarPlanckConstant                           = codata.New("molar Planck constant", 3.9903126821e-10, 5.7e-19, "J s mol^-1")
	molarPlanckConstantTimesC                     = codata.New("molar Planck constant times c", 0.11962656472, 1.7e-10, "J m mol^-1")
	molarVolumeOfIdealGas27315K100KPa             = codata.New("molar volume of ideal gas (273.15 K, 100 kPa)", 0.022710981, 4e-08, "m^3 mol^-1")
	molarVolumeOfIdealGas27315K101325KPa          = codata.New("molar volume of ideal gas (273.15 K, 101.325 kPa)", 0.022413996, 3.9e-08, "m^3 mol^-1")
	molarVolumeOfSilicon                          = codata.New("molar volume of silicon", 1.20588349e-05, 1.1e-12, "m^3 mol^-1")
	moXUnit                                       = codata.New("Mo x unit", 1.00209955e-13, 5.3e-20, "m")
	muonComptonWavelength                         = codata.New("muon Compton wavelength", 1.173444104e-14, 3e-22, "m")
	muonComptonWavelengthOver2Pi                  = codata.New("muon Compton wavelength over 2 pi", 1.867594295e-15, 4.7e-23, "m")
	muonElectronMassRatio                         = codata.New("muon-electron mass ratio", 206.7682823, 5.2e-06, "")
	muonGFactor                                   = codata.New("muon g factor", -2.0023318414, 1.2e-09, "")
	muonMagMom                                    = codata.New("muon mag. mom.", -4.49044786e-26, 1.6e-33, "J T^-1")
	muonMagMomAnomaly                             = codata.New("muon mag. mom. anomaly", 0.00116592069, 6e-10, "")
	muonMagMomToBohrMagnetonRatio                 = codata.New("muon mag. mom. to Bohr magneton ratio", -0.00484197049, 1.2e-10, "")
	muonMagMomToNuclearMagnetonRatio              = codata.New("muon mag. mom. to nuclear magneton ratio", -8.89059705, 2.3e-07, "")
	muonMass                                      = codata.New("muon mass", 1.8835313e-28, 1.1e-35, "kg")
	muonMassEnergyEquivalent                      = codata.New("muon mass energy equivalent", 1.69283351e-11, 9.5e-19, "J")
	muonMassEnergyEquivalentInMeV                 = codata.New("muon mass energy equivalent in MeV", 105.6583668, 3.8e-06, "MeV")
	muonMassInU                                   = codata.New("muon mass in u", 0.1134289256, 2.9e-09, "u")
	muonMolarMass                                 = codata.New("muon molar mass", 0.0001134289256, 2.9e-12, "kg mol^-1")
	muonNeutronMassRatio                          = codata.New("muon-neutron mass ratio", 0.1124545167, 2.9e-09, "")
	muonProtonMagMomRatio                         = codata.New("muon-proton mag. mom. ratio", -3.183345137, 8.5e-08, "")
	muonProtonMassRatio                           = codata.New("muon-proton mass ratio", 0.1126095261, 2.9e-09, "")
	muonTauMassRatio                              = codata.New("muon-tau mass ratio", 0.0594592, 9.7e-06, "")
	naturalUnitOfAction                           = codata.New("natural unit of action", 1.054571628e-34, 5.3e-42, "J s")
	naturalUnitOfActionInEVS                      = codata.New("natural unit of action in eV s", 6.58211899e-16, 1.6e-23, "eV s")
	naturalUnitOfEnergy                           = codata.New("natural unit of energy", 8.18710438e-14, 4.1e-21, "J")
	naturalUnitOfEnergyInMeV                      = codata.New("natural unit of energy in MeV", 0.51099891, 1.3e-08, "MeV")
	naturalUnitOfLength                           = codata.New("natural unit of length", 3.8615926459e-13, 5.3e-22, "m")
	naturalUnitOfMass                             = codata.New("natural unit of mass", 9.10938215e-31, 4.5e-38, "kg")
	naturalUnitOfMomentum                         = codata.New("natural unit of momentum", 2.73092406e-22, 1.4e-29, "kg m s^-1")
	naturalUnitOfMomentumInMeVC                   = codata.New("natural unit of momentum in MeV/c", 0.51099891, 1.3e-08, "MeV/c")
	naturalUnitOfTime                             = codata.New("natural unit of time", 1.288088657e-21, 1.8e-30, "s")
	naturalUnitOfVelocity                         = codata.New("natural unit of velocity", 2.99792458e+08, 0, "m s^-1")
	neutronComptonWavelength                      = codata.New("neutron Compton wavelength", 1.3195908951e-15, 2e-24, "m")
	neutronComptonWavelengthOver2Pi               = codata.New("neutron Compton wavelength over 2 pi", 2.1001941382e-16, 3.1e-25, "m")
	neutronElectronMagMomRatio                    = codata.New("neutron-electron mag. mom. ratio", 0.00104066882, 2.5e-10, "")
	neutronElectronMassRatio                      = codata.New("neutron-electron mass ratio", 1838.6836605, 1.1e-06, "")
	neutronGFactor                                = codata.New("neutron g factor", -3.82608545, 9e-07, "")
	neutronGyromagRatio                           = codata.New("neutron gyromag. ratio", 1.83247185e+08, 43, "s^-1 T^-1")
	neutronGyromagRatioOver2Pi                    = codata.New("neutron gyromag. ratio over 2 pi", 29.1646954, 6.9e-06, "MHz T^-1")
	neutronMagMom                                 = codata.New("neutron mag. mom.", -9.6623641e-27, 2.3e-33, "J T^-1")
	neutronMagMomToBohrMagnetonRatio              = codata.New("neutron mag. mom. to Bohr magneton ratio", -0.00104187563, 2.5e-10, "")
	neutronMagMomToNuclearMagnetonRatio           = codata.New("neutron mag. mom. to nuclear magneton ratio", -1.91304273, 4.5e-07, "")
	neutronMass                                   = codata.New("neutron mass", 1.674927211e-27, 8.4e-35, "kg")
	neutronMassEnergyEquivalent                   = codata.New("neutron mass energy equivalent", 1.505349505e-10, 7.5e-18, "J")
	neutronMassEnergyEquivalentInMeV              = codata.New("neutron mass energy equivalent in MeV", 939.565346, 2.3e-05, "MeV")
	neutronMassInU                                = codata.New("neutron mass in u", 1.00866491597, 4.3e-10, "u")
	neutronMolarMass                              = codata.New("neutron molar mass", 0.00100866491597, 4.3e-13, "kg mol^-1")
	neutronMuonMassRatio                          = codata.New("neutron-muon mass ratio", 8.89248409, 2.3e-07, "")
	neutronProtonMagMomRatio                      = codata.New("neutron-proton mag. mom. ratio", -0.68497934, 1.6e-07, "")
	neutronProtonMassRatio                        = codata.New("neutron-proton mass ratio", 1.00137841918, 4.6e-10, "")
	neutronTauMassRatio                           = codata.New("neutron-tau mass ratio", 0.52874, 8.6e-05, "")
	neutronToShieldedProtonMagMomRatio            = codata.New("neutron to shielded proton mag. mom. ratio", -0.68499694, 1.6e-07, "")
	newtonianConstantOfGravitation                = codata.New("Newtonian constant of gravitation", 6.67428e-11, 6.7e-15, "m^3 kg^-1 s^-2")
	newtonianConstantOfGravitationOverHBarC       = codata.New("Newtonian constant of gravitation over h-bar c", 6.70881e-39, 6.7e-43, "(GeV/c^2)^-2")
	nuclearMagneton                               = codata.New("nuclear magneton", 5.05078324e-27, 1.3e-34, "J T^-1")
	nuclearMagnetonInEVT                          = codata.New("nuclear magneton in eV/T", 3.1524512326e-08, 4.5e-17, "eV T^-1")
	nuclearMagnetonInInverseMetersPerTesla        = codata.New("nuclear magneton in inverse meters per tesla", 0.02542623616, 6.4e-10, "m^-1 T^-1")
	nuclearMagnetonInKT                           = codata.New("nuclear magneton in K/T", 0.00036582637, 6.4e-10, "K T^-1")
	nuclearMagnetonInMHzT                         = codata.New("nuclear magneton in MHz/T", 7.62259384, 1.9e-07, "MHz T^-1")
	planckConstant                                = codata.New("Planck constant", 6.62606896e-34, 3.3e-41, "J s")
	planckConstantInEVS                           = codata.New("Planck constant in eV s", 4.13566733e-15, 1e-22, "eV s")
	planckConstantOver2Pi                         = codata.New("Planck constant over 2 pi", 1.054571628e-34, 5.3e-42, "J s")
	planckConstantOver2PiInEVS                    = codata.New("Planck constant over 2 pi in eV s", 6.58211899e-16, 1.6e-23, "eV s")
	planckConstantOver2PiTimesCInMeVFm            = codata.New("Planck constant over 2 pi times c in MeV fm", 197.3269631, 4.9e-06, "MeV fm")
	planckLength                                  = codata.New("Planck length", 1.616252e-35, 8.1e-40, "m")
	planckMass                                    = codata.New("Planck mass", 2.17644e-08, 1.1e-12, "kg")
	planckMassEnergyEquivalentInGeV               = codata.New("Planck mass energy equivalent in GeV", 1.220892e+19, 6.1e+14, "GeV")
	planckTemperature                             = codata.New("Planck temperature", 1.416785e+32, 7.1e+27, "K")
	planckTime                                    = codata.New("Planck time", 5.39124e-44, 2.7e-48, "s")
	protonChargeToMassQuotient                    = codata.New("proton charge to mass quotient", 9.57883392e+07, 2.4, "C kg^-1")
	protonComptonWavelength                       = codata.New("proton Compton wavelength", 1.3214098446e-15, 1.9e-24, "m")
	protonComptonWavelengthOver2Pi                = codata.New("proton Compton wavelength over 2 pi", 2.1030890861e-16, 3e-25, "m")
	protonElectronMassRatio                       = codata.New("proton-electron mass ratio", 1836.15267247, 8e-07, "")
	protonGFactor                                 = codata.New("proton g factor", 5.585694713, 4.6e-08, "")
	protonGyromagRatio                            = codata.New("proton gyromag. ratio", 2.675222099e+08, 7, "s^-1 T^-1")
	protonGyromagRatioOver2Pi                     = codata.New("proton gyromag. ratio over 2 pi", 42.5774821, 1.1e-06, "MHz T^-1")
	protonMagMom                                  = codata.New("proton mag. mom.", 1.410606662e-26, 3.7e-34, "J T^-1")
	protonMagMomToBohrMagnetonRatio               = codata.New("proton mag. mom. to Bohr magneton ratio", 0.001521032209, 1.2e-11, "")
	protonMagMomToNuclearMagnetonRatio            = codata.New("proton mag. mom. to nuclear magneton ratio", 2.792847356, 2.3e-08, "")
	protonMagShieldingCorrection                  = codata.New("proton mag. shielding correction", 2.5694e-05, 1.4e-08, "")
	protonMass                                    = codata.New("proton mass", 1.672621637e-27, 8.3e-35, "kg")
	protonMassEnergyEquivalent                    = codata.New("proton mass energy equivalent", 1.503277359e-10, 7.5e-18, "J")
	protonMassEnergyEquivalentInMeV               = codata.New("proton mass energy equivalent in MeV", 938.272013, 2.3e-05, "MeV")
	protonMassInU                                 = codata.New("proton mass in u", 1.00727646677, 1e-10, "u")
	protonMolarMass                               = codata.New("proton molar mass", 0.00100727646677, 1e-13, "kg mol^-1")
	protonMuonMassRatio                           = codata.New("proton-muon mass ratio", 8.88024339, 2.3e-07, "")
	protonNeutronMagMomRatio                      = codata.New("proton-neutron mag. mom. ratio", -1.45989806, 3.4e-07, "")
	protonNeutronMassRatio                        = codata.New("proton-neutron mass ratio", 0.99862347824, 4.6e-10, "")
	protonRmsChargeRadius                         = codata.New("proton rms charge radius", 8.768e-16, 6.9e-18, "m")
	protonTauMassRatio                            = codata.New("proton-tau mass ratio", 0.528012, 8.6e-05, "")
	quantumOfCirculation                          = codata.New("quantum of circulation", 0.00036369475199, 5e-13, "m^2 s^-1")
	quantumOfCirculationTimes2                    = codata.New("quantum of circulation times 2", 0.000727389504, 1e-12, "m^2 s^-1")
	rydbergConstant                               = codata.New("Rydberg constant", 1.0973731568527e+07, 7.3e-05, "m^-1")
	rydbergConstantTimesCInHz                     = codata.New("Rydberg constant times c in Hz", 3.289841960361e+15, 22000, "Hz")
	rydbergConstantTimesHcInEV                    = codata.New("Rydberg constant times hc in eV", 13.60569193, 3.4e-07, "eV")
	rydbergConstantTimesHcInJ                     = codata.New("Rydberg constant times hc in J", 2.17987197e-18, 1.1e-25, "J")
	sackurTetrodeConstant1K100KPa                 = codata.New("Sackur-Tetrode constant (1 K, 100 kPa)", -1.1517047, 4.4e-06, "")
	sackurTetrodeConstant1K101325KPa              = codata.New("Sackur-Tetrode constant (1 K, 101.325 kPa)", -1.1648677, 4.4e-06, "")
	secondRadiationConstant                       = codata.New("second radiation constant", 0.014387752, 2.5e-08, "m K")
	shieldedHelionGyromagRatio                    = codata.New("shielded helion gyromag. ratio", 2.03789473e+08, 5.6, "s^-1 T^-1")
	shieldedHelionGyromagRatioOver2Pi             = codata.New("shielded helion gyromag. ratio over 2 pi", 32.43410198, 9e-07, "MHz T^-1")
	shieldedHelionMagMom                          = codata.New("shielded helion mag. mom.", -1.074552982e-26, 3e-34, "J T^-1")
	shieldedHelionMagMomToBohrMagnetonRatio       = codata.New("shielded helion mag. mom. to Bohr magneton ratio", -0.001158671471, 1.4e-11, "")
	shieldedHelionMagMomToNuclearMagnetonRatio    = codata.New("shielded helion mag. mom. to nuclear magneton ratio", -2.127497718, 2.5e-08, "")
	shieldedHelionToProtonMagMomRatio             = codata.New("shielded helion to proton mag. mom. ratio", -0.761766558, 1.1e-08, "")
	shieldedHelionToShieldedProtonMagMomRatio     = codata.New("shielded helion to shielded proton mag. mom. ratio", -0.7617861313, 3.3e-09, "")
	shieldedProtonGyromagRatio                    = codata.New("shielded proton gyromag. ratio", 2.675153362e+08, 7.3, "s^-1 T^-1")
	shieldedProtonGyromagRatioOver2Pi             = codata.New("shielded proton gyromag. ratio over 2 pi", 42.5763881, 1.2e-06, "MHz T^-1")
	shieldedProtonMagMom                          = codata.New("shielded proton mag. mom.", 1.410570419e-26, 3.8e-34, "J T^-1")
	shieldedProtonMagMomToBohrMagnetonRatio       = codata.New("shielded proton mag. mom. to Bohr magneton ratio", 0.001520993128, 1.7e-11, "")
	shieldedProtonMagMomToNuclearMagnetonRatio    = codata.New("shielded proton mag. mom. to nuclear magneton ratio", 2.792775598, 3e-08, "")
	speedOfLightInVacuum                          = codata.New("speed of light in vacuum", 2.99792458e+08, 0, "m s^-1")
	standardAccelerationOfGravity                 = codata.New("standard acceleration of gravity", 9.80665, 0, "m s^-2")
	standardAtmosphere                            = codata.New("standard atmosphere", 101325, 0, "Pa")
	stefanBoltzmannConstant                       = codata.New("Stefan-Boltzmann constant", 5.6704e-08, 4e-13, "W m^-2 K^-4")
	tauComptonWavelength                          = codata.New("tau Compton wavelength", 6.9772e-16, 1.1e-19, "m")
	tauComptonWavelengthOver2Pi                   = codata.New("tau Compton wavelength over 2 pi", 1.11046e-16, 1.8e-20, "m")
	tauElectronMassRatio                          = codata.New("tau-electron mass ratio", 3477.48, 0.57, "")
	tauMass                                       = codata.New("tau mass", 3.16777e-27, 5.2e-31, "kg")
	tauMassEnergyEquivalent                       = codata.New("tau mass energy equivalent", 2.84705e-10, 4.6e-14, "J")
	tauMassEnergyEquivalentInMeV                  = codata.New("tau mass energy equivalent in MeV", 1776.99, 0.29, "MeV")
	tauMassInU                                    = codata.New("tau mass in u", 1.90768, 0.00031, "u")
	tauMolarMass                                  = codata.New("tau molar mass", 0.00190768, 3.1e-07, "kg mol^-1")
	tauMuonMassRatio                              = codata.New("tau-muon mass ratio", 16.8183, 0.0027, "")
	tauNeutronMassRatio                           = codata.New("tau-neutron mass ratio", 1.89129, 0.00031, "")
	tauProtonMassRatio                            = codata.New("tau-proton mass ratio", 1.8939, 0.00031, "")
	thomsonCrossSection                           = codata.New("Thomson cross section", 6.652458558e-29, 2.7e-37, "m^2")
	tritonElectronMagMomRatio                     = codata.New("triton-electron mag. mom. ratio", -0.001620514423, 2.1e-11, "")
	tritonElectronMassRatio                       = codata.New("triton-electron mass ratio", 5496.9215269, 5.1e-06, "")
	tritonGFactor                                 = codata.New("triton g factor", 5.957924896, 7.6e-08, "")
	tritonMagMom                                  = codata.New("triton mag. mom.", 1.504609361e-26, 4.2e-34, "J T^-1")
	tritonMagMomToBohrMagnetonRatio               = codata.New("triton mag. mom. to Bohr magneton ratio", 0.001622393657, 2.1e-11, "")
	tritonMagMomToNuclearMagnetonRatio            = codata.New("triton mag. mom. to nuclear magneton ratio", 2.978962448, 3.8e-08, "")
	tritonMass                                    = codata.New("triton mass", 5.00735588e-27, 2.5e-34, "kg")
	tritonMassEnergyEquivalent                    = codata.New("triton mass energy equivalent", 4.50038703e-10, 2.2e-17, "J")
	tritonMassEnergyEquivalentInMeV               = codata.New("triton mass energy equivalent in MeV", 2808.920906, 7e-05, "MeV")
	tritonMassInU                                 = codata.New("triton mass in u", 3.0155007134, 2.5e-09, "u")
	tritonMolarMass                               = codata.New("triton molar mass", 0.0030155007134, 2.5e-12, "kg mol^-1")
	tritonNeutronMagMomRatio                      = codata.New("triton-neutron mag. mom. ratio", -1.55718553, 3.7e-07, "")
	tritonProtonMagMomRatio                       = codata.New("triton-proton mag. mom. ratio", 1.066639908, 1e-08, "")
	tritonProtonMassRatio                         = codata.New("triton-proton mass ratio", 2.9937170309, 2.5e-09, "")
	unifiedAtomicMassUnit                         = codata.New("unified atomic mass unit", 1.660538782e-27, 8.3e-35, "kg")
	vonKlitzingConstant                           = codata.New("von Klitzing constant", 25812.807557, 1.8e-05, "ohm")
	weakMixingAngle                               = codata.New("weak mixing angle", 0.22255, 0.00056, "")
	wienFrequencyDisplacementLawConstant          = codata.New("Wien frequency displacement law constant", 5.878933e+10, 100000, "Hz K^-1")
	wienWavelengthDisplacementLawConstant         = codata.New("Wien wavelength displacement law constant", 0.0028977685, 5.1e-09, "m K")
)

// LatticeSpacingOfSilicon returns the lattice spacing of silicon, in m.
func LatticeSpacingOfSilicon() codata.Constant { return latticeSpacingOfSilicon }

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

// AtomicUnitOfAction returns the atomic unit of action, in J s.
func AtomicUnitOfAction() codata.Constant { return atomicUnitOfAction }

// AtomicUnitOfCharge returns the atomic unit of charge, in C.
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

// AtomicUnitOfPermittivity returns the atomic unit of permittivity, in F m^-1, exact.
func AtomicUnitOfPermittivity() codata.Constant { return atomicUnitOfPermittivity }

// AtomicUnitOfTime returns the atomic unit of time, in s.
func AtomicUnitOfTime() codata.Constant { return atomicUnitOfTime }

// AtomicUnitOfVelocity returns the atomic unit of velocity, in m s^-1.
func AtomicUnitOfVelocity() codata.Constant { return atomicUnitOfVelocity }

// AvogadroConstant returns the Avogadro constant, in mol^-1.
func AvogadroConstant() codata.Constant { return avogadroConstant }

// BohrMagneton returns the Bohr magneton, in J T^-1.
func BohrMagneton() codata.Constant { return bohrMagneton }

// BohrMagnetonInEVT returns the Bohr magneton in eV/T.
func BohrMagnetonInEVT() codata.Constant { return bohrMagnetonInEVT }

// BohrMagnetonInHzT returns the Bohr magneton in Hz/T.
func BohrMagnetonInHzT() codata.Constant { return bohrMagnetonInHzT }

// BohrMagnetonInInverseMetersPerTesla returns the Bohr magneton in inverse meters per tesla.
func BohrMagnetonInInverseMetersPerTesla() codata.Constant { return bohrMagnetonInInverseMetersPerTesla }

// BohrMagnetonInKT returns the Bohr magneton in K/T.
func BohrMagnetonInKT() codata.Constant { return bohrMagnetonInKT }

// BohrRadius returns the Bohr radius, in m.
func BohrRadius() codata.Constant { return bohrRadius }

// BoltzmannConstant returns the Boltzmann constant, in J K^-1.
func BoltzmannConstant() codata.Constant { return boltzmannConstant }

// BoltzmannConstantInEVK returns the Boltzmann constant in eV/K.
func BoltzmannConstantInEVK() codata.Constant { return boltzmannConstantInEVK }

// BoltzmannConstantInHzK returns the Boltzmann constant in Hz/K.
func BoltzmannConstantInHzK() codata.Constant { return boltzmannConstantInHzK }

// BoltzmannConstantInInverseMetersPerKelvin returns the Boltzmann constant in inverse meters per kelvin.
func BoltzmannConstantInInverseMetersPerKelvin() codata.Constant { return boltzmannConstantInInverseMetersPerKelvin }

// CharacteristicImpedanceOfVacuum returns the characteristic impedance of vacuum, in ohm, exact.
func CharacteristicImpedanceOfVacuum() codata.Constant { return characteristicImpedanceOfVacuum }

// ClassicalElectronRadius returns the classical electron radius, in m.
func ClassicalElectronRadius() codata.Constant { return classicalElectronRadius }

// ComptonWavelength returns the Compton wavelength, in m.
func ComptonWavelength() codata.Constant { return comptonWavelength }

// ComptonWavelengthOver2Pi returns the Compton wavelength over 2 pi, in m.
func ComptonWavelengthOver2Pi() codata.Constant { return comptonWavelengthOver2Pi }

// ConductanceQuantum returns the conductance quantum, in S.
func ConductanceQuantum() codata.Constant { return conductanceQuantum }

// ConventionalValueOfJosephsonConstant returns the conventional value of Josephson constant, in Hz V^-1, exact.
func ConventionalValueOfJosephsonConstant() codata.Constant { return conventionalValueOfJosephsonConstant }

// ConventionalValueOfVonKlitzingConstant returns the conventional value of von Klitzing constant, in ohm, exact.
func ConventionalValueOfVonKlitzingConstant() codata.Constant { return conventionalValueOfVonKlitzingConstant }

// CuXUnit returns the Cu x unit, in m.
func CuXUnit() codata.Constant { return cuXUnit }

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

// DeuteronRmsChargeRadius returns the deuteron rms charge radius, in m.
func DeuteronRmsChargeRadius() codata.Constant { return deuteronRmsChargeRadius }

// ElectricConstant returns the electric constant, in F m^-1, exact.
func ElectricConstant() codata.Constant { return electricConstant }

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

// ElectronGyromagRatioOver2Pi returns the electron gyromag. ratio over 2 pi, in MHz T^-1.
func ElectronGyromagRatioOver2Pi() codata.Constant { return electronGyromagRatioOver2Pi }

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

// ElectronTauMassRatio returns the electron-tau mass ratio (dimensionless).
func ElectronTauMassRatio() codata.Constant { return electronTauMassRatio }

// ElectronToAlphaParticleMassRatio returns the electron to alpha particle mass ratio (dimensionless).
func ElectronToAlphaParticleMassRatio() codata.Constant { return electronToAlphaParticleMassRatio }

// ElectronToShieldedHelionMagMomRatio returns the electron to shielded helion mag. mom. ratio (dimensionless).
func ElectronToShieldedHelionMagMomRatio() codata.Constant { return electronToShieldedHelionMagMomRatio }

// ElectronToShieldedProtonMagMomRatio returns the electron to shielded proton mag. mom. ratio (dimensionless).
func ElectronToShieldedProtonMagMomRatio() codata.Constant { return electronToShieldedProtonMagMomRatio }

// ElectronVolt returns the electron volt, in J.
func ElectronVolt() codata.Constant { return electronVolt }

// ElectronVoltAtomicMassUnitRelationship returns the electron volt-atomic mass unit relationship, in u.
func ElectronVoltAtomicMassUnitRelationship() codata.Constant { return electronVoltAtomicMassUnitRelationship }

// ElectronVoltHartreeRelationship returns the electron volt-hartree relationship, in E_h.
func ElectronVoltHartreeRelationship() codata.Constant { return electronVoltHartreeRelationship }

// ElectronVoltHertzRelationship returns the electron volt-hertz relationship, in Hz.
func ElectronVoltHertzRelationship() codata.Constant { return electronVoltHertzRelationship }

// ElectronVoltInverseMeterRelationship returns the electron volt-inverse meter relationship, in m^-1.
func ElectronVoltInverseMeterRelationship() codata.Constant { return electronVoltInverseMeterRelationship }

// ElectronVoltJouleRelationship returns the electron volt-joule relationship, in J.
func ElectronVoltJouleRelationship() codata.Constant { return electronVoltJouleRelationship }

// ElectronVoltKelvinRelationship returns the electron volt-kelvin relationship, in K.
func ElectronVoltKelvinRelationship() codata.Constant { return electronVoltKelvinRelationship }

// ElectronVoltKilogramRelationship returns the electron volt-kilogram relationship, in kg.
func ElectronVoltKilogramRelationship() codata.Constant { return electronVoltKilogramRelationship }

// ElementaryCharge returns the elementary charge, in C.
func ElementaryCharge() codata.Constant { return elementaryCharge }

// ElementaryChargeOverH returns the elementary charge over h, in A J^-1.
func ElementaryChargeOverH() codata.Constant { return elementaryChargeOverH }

// FaradayConstant returns the Faraday constant, in C mol^-1.
func FaradayConstant() codata.Constant { return faradayConstant }

// FaradayConstantForConventionalElectricCurrent returns the Faraday constant for conventional electric current, in C_90 mol^-1.
func FaradayConstantForConventionalElectricCurrent() codata.Constant { return faradayConstantForConventionalElectricCurrent }

// FermiCouplingConstant returns the Fermi coupling constant, in GeV^-2.
func FermiCouplingConstant() codata.Constant { return fermiCouplingConstant }

// FineStructureConstant returns the fine-structure constant (dimensionless).
func FineStructureConstant() codata.Constant { return fineStructureConstant }

// FirstRadiationConstant returns the first radiation constant, in W m^2.
func FirstRadiationConstant() codata.Constant { return firstRadiationConstant }

// FirstRadiationConstantForSpectralRadiance returns the first radiation constant for spectral radiance, in W m^2 sr^-1.
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

// HertzAtomicMassUnitRelationship returns the hertz-atomic mass unit relationship, in u.
func HertzAtomicMassUnitRelationship() codata.Constant { return hertzAtomicMassUnitRelationship }

// HertzElectronVoltRelationship returns the hertz-electron volt relationship, in eV.
func HertzElectronVoltRelationship() codata.Constant { return hertzElectronVoltRelationship }

// HertzHartreeRelationship returns the hertz-hartree relationship, in E_h.
func HertzHartreeRelationship() codata.Constant { return hertzHartreeRelationship }

// HertzInverseMeterRelationship returns the hertz-inverse meter relationship, in m^-1, exact.
func HertzInverseMeterRelationship() codata.Constant { return hertzInverseMeterRelationship }

// HertzJouleRelationship returns the hertz-joule relationship, in J.
func HertzJouleRelationship() codata.Constant { return hertzJouleRelationship }

// HertzKelvinRelationship returns the hertz-kelvin relationship, in K.
func HertzKelvinRelationship() codata.Constant { return hertzKelvinRelationship }

// HertzKilogramRelationship returns the hertz-kilogram relationship, in kg.
func HertzKilogramRelationship() codata.Constant { return hertzKilogramRelationship }

// InverseFineStructureConstant returns the inverse fine-structure constant (dimensionless).
func InverseFineStructureConstant() codata.Constant { return inverseFineStructureConstant }

// InverseMeterAtomicMassUnitRelationship returns the inverse meter-atomic mass unit relationship, in u.
func InverseMeterAtomicMassUnitRelationship() codata.Constant { return inverseMeterAtomicMassUnitRelationship }

// InverseMeterElectronVoltRelationship returns the inverse meter-electron volt relationship, in eV.
func InverseMeterElectronVoltRelationship() codata.Constant { return inverseMeterElectronVoltRelationship }

// InverseMeterHartreeRelationship returns the inverse meter-hartree relationship, in E_h.
func InverseMeterHartreeRelationship() codata.Constant { return inverseMeterHartreeRelationship }

// InverseMeterHertzRelationship returns the inverse meter-hertz relationship, in Hz, exact.
func InverseMeterHertzRelationship() codata.Constant { return inverseMeterHertzRelationship }

// InverseMeterJouleRelationship returns the inverse meter-joule relationship, in J.
func InverseMeterJouleRelationship() codata.Constant { return inverseMeterJouleRelationship }

// InverseMeterKelvinRelationship returns the inverse meter-kelvin relationship, in K.
func InverseMeterKelvinRelationship() codata.Constant { return inverseMeterKelvinRelationship }

// InverseMeterKilogramRelationship returns the inverse meter-kilogram relationship, in kg.
func InverseMeterKilogramRelationship() codata.Constant { return inverseMeterKilogramRelationship }

// InverseOfConductanceQuantum returns the inverse of conductance quantum, in ohm.
func InverseOfConductanceQuantum() codata.Constant { return inverseOfConductanceQuantum }

// JosephsonConstant returns the Josephson constant, in Hz V^-1.
func JosephsonConstant() codata.Constant { return josephsonConstant }

// JouleAtomicMassUnitRelationship returns the joule-atomic mass unit relationship, in u.
func JouleAtomicMassUnitRelationship() codata.Constant { return jouleAtomicMassUnitRelationship }

// JouleElectronVoltRelationship returns the joule-electron volt relationship, in eV.
func JouleElectronVoltRelationship() codata.Constant { return jouleElectronVoltRelationship }

// JouleHartreeRelationship returns the joule-hartree relationship, in E_h.
func JouleHartreeRelationship() codata.Constant { return jouleHartreeRelationship }

// JouleHertzRelationship returns the joule-hertz relationship, in Hz.
func JouleHertzRelationship() codata.Constant { return jouleHertzRelationship }

// JouleInverseMeterRelationship returns the joule-inverse meter relationship, in m^-1.
func JouleInverseMeterRelationship() codata.Constant { return jouleInverseMeterRelationship }

// JouleKelvinRelationship returns the joule-kelvin relationship, in K.
func JouleKelvinRelationship() codata.Constant { return jouleKelvinRelationship }

// JouleKilogramRelationship returns the joule-kilogram relationship, in kg, exact.
func JouleKilogramRelationship() codata.Constant { return jouleKilogramRelationship }

// KelvinAtomicMassUnitRelationship returns the kelvin-atomic mass unit relationship, in u.
func KelvinAtomicMassUnitRelationship() codata.Constant { return kelvinAtomicMassUnitRelationship }

// KelvinElectronVoltRelationship returns the kelvin-electron volt relationship, in eV.
func KelvinElectronVoltRelationship() codata.Constant { return kelvinElectronVoltRelationship }

// KelvinHartreeRelationship returns the kelvin-hartree relationship, in E_h.
func KelvinHartreeRelationship() codata.Constant { return kelvinHartreeRelationship }

// KelvinHertzRelationship returns the kelvin-hertz relationship, in Hz.
func KelvinHertzRelationship() codata.Constant { return kelvinHertzRelationship }

// KelvinInverseMeterRelationship returns the kelvin-inverse meter relationship, in m^-1.
func KelvinInverseMeterRelationship() codata.Constant { return kelvinInverseMeterRelationship }

// KelvinJouleRelationship returns the kelvin-joule relationship, in J.
func KelvinJouleRelationship() codata.Constant { return kelvinJouleRelationship }

// KelvinKilogramRelationship returns the kelvin-kilogram relationship, in kg.
func KelvinKilogramRelationship() codata.Constant { return kelvinKilogramRelationship }

// KilogramAtomicMassUnitRelationship returns the kilogram-atomic mass unit relationship, in u.
func KilogramAtomicMassUnitRelationship() codata.Constant { return kilogramAtomicMassUnitRelationship }

// KilogramElectronVoltRelationship returns the kilogram-electron volt relationship, in eV.
func KilogramElectronVoltRelationship() codata.Constant { return kilogramElectronVoltRelationship }

// KilogramHartreeRelationship returns the kilogram-hartree relationship, in E_h.
func KilogramHartreeRelationship() codata.Constant { return kilogramHartreeRelationship }

// KilogramHertzRelationship returns the kilogram-hertz relationship, in Hz.
func KilogramHertzRelationship() codata.Constant { return kilogramHertzRelationship }

// KilogramInverseMeterRelationship returns the kilogram-inverse meter relationship, in m^-1.
func KilogramInverseMeterRelationship() codata.Constant { return kilogramInverseMeterRelationship }

// KilogramJouleRelationship returns the kilogram-joule relationship, in J, exact.
func KilogramJouleRelationship() codata.Constant { return kilogramJouleRelationship }

// KilogramKelvinRelationship returns the kilogram-kelvin relationship, in K.
func KilogramKelvinRelationship() codata.Constant { return kilogramKelvinRelationship }

// LatticeParameterOfSilicon returns the lattice parameter of silicon, in m.
func LatticeParameterOfSilicon() codata.Constant { return latticeParameterOfSilicon }

// LoschmidtConstant27315K101325KPa returns the Loschmidt constant (273.15 K, 101.325 kPa), in m^-3.
func LoschmidtConstant27315K101325KPa() codata.Constant { return loschmidtConstant27315K101325KPa }

// MagConstant returns the mag. constant, in N A^-2, exact.
func MagConstant() codata.Constant { return magConstant }

// MagFluxQuantum returns the mag. flux quantum, in Wb.
func MagFluxQuantum() codata.Constant { return magFluxQuantum }

// MolarGasConstant returns the molar gas constant, in J mol^-1 K^-1.
func MolarGasConstant() codata.Constant { return molarGasConstant }

// MolarMassConstant returns the molar mass constant, in kg mol^-1, exact.
func MolarMassConstant() codata.Constant { return molarMassConstant }

// MolarMassOfCarbon12 returns the molar mass of carbon-12, in kg mol^-1, exact.
func MolarMassOfCarbon12() codata.Constant { return molarMassOfCarbon12 }

// MolarPlanckConstant returns the molar Planck constant, in J s mol^-1.
func MolarPlanckConstant() codata.Constant { return molarPlanckConstant }

// MolarPlanckConstantTimesC returns the molar Planck constant times c, in J m mol^-1.
func MolarPlanckConstantTimesC() codata.Constant { return molarPlanckConstantTimesC }

// MolarVolumeOfIdealGas27315K100KPa returns the molar volume of ideal gas (273.15 K, 100 kPa), in m^3 mol^-1.
func MolarVolumeOfIdealGas27315K100KPa() codata.Constant { return molarVolumeOfIdealGas27315K100KPa }

// MolarVolumeOfIdealGas27315K101325KPa returns the molar volume of ideal gas (273.15 K, 101.325 kPa), in m^3 mol^-1.
func MolarVolumeOfIdealGas27315K101325KPa() codata.Constant { return molarVolumeOfIdealGas27315K101325KPa }

// MolarVolumeOfSilicon returns the molar volume of silicon, in m^3 mol^-1.
func MolarVolumeOfSilicon() codata.Constant { return molarVolumeOfSilicon }

// MoXUnit returns the Mo x unit, in m.
func MoXUnit() codata.Constant { return moXUnit }

// MuonComptonWavelength returns the muon Compton wavelength, in m.
func MuonComptonWavelength() codata.Constant { return muonComptonWavelength }

// MuonComptonWavelengthOver2Pi returns the muon Compton wavelength over 2 pi, in m.
func MuonComptonWavelengthOver2Pi() codata.Constant { return muonComptonWavelengthOver2Pi }

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

// NaturalUnitOfAction returns the natural unit of action, in J s.
func NaturalUnitOfAction() codata.Constant { return naturalUnitOfAction }

// NaturalUnitOfActionInEVS returns the natural unit of action in eV s.
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

// NeutronComptonWavelengthOver2Pi returns the neutron Compton wavelength over 2 pi, in m.
func NeutronComptonWavelengthOver2Pi() codata.Constant { return neutronComptonWavelengthOver2Pi }

// NeutronElectronMagMomRatio returns the neutron-electron mag. mom. ratio (dimensionless).
func NeutronElectronMagMomRatio() codata.Constant { return neutronElectronMagMomRatio }

// NeutronElectronMassRatio returns the neutron-electron mass ratio (dimensionless).
func NeutronElectronMassRatio() codata.Constant { return neutronElectronMassRatio }

// NeutronGFactor returns the neutron g factor (dimensionless).
func NeutronGFactor() codata.Constant { return neutronGFactor }

// NeutronGyromagRatio returns the neutron gyromag. ratio, in s^-1 T^-1.
func NeutronGyromagRatio() codata.Constant { return neutronGyromagRatio }

// NeutronGyromagRatioOver2Pi returns the neutron gyromag. ratio over 2 pi, in MHz T^-1.
func NeutronGyromagRatioOver2Pi() codata.Constant { return neutronGyromagRatioOver2Pi }

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

// NeutronProtonMassRatio returns the neutron-proton mass ratio (dimensionless).
func NeutronProtonMassRatio() codata.Constant { return neutronProtonMassRatio }

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

// NuclearMagnetonInInverseMetersPerTesla returns the nuclear magneton in inverse meters per tesla.
func NuclearMagnetonInInverseMetersPerTesla() codata.Constant { return nuclearMagnetonInInverseMetersPerTesla }

// NuclearMagnetonInKT returns the nuclear magneton in K/T.
func NuclearMagnetonInKT() codata.Constant { return nuclearMagnetonInKT }

// NuclearMagnetonInMHzT returns the nuclear magneton in MHz/T.
func NuclearMagnetonInMHzT() codata.Constant { return nuclearMagnetonInMHzT }

// PlanckConstant returns the Planck constant, in J s.
func PlanckConstant() codata.Constant { return planckConstant }

// PlanckConstantInEVS returns the Planck constant in eV s.
func PlanckConstantInEVS() codata.Constant { return planckConstantInEVS }

// PlanckConstantOver2Pi returns the Planck constant over 2 pi, in J s.
func PlanckConstantOver2Pi() codata.Constant { return planckConstantOver2Pi }

// PlanckConstantOver2PiInEVS returns the Planck constant over 2 pi in eV s.
func PlanckConstantOver2PiInEVS() codata.Constant { return planckConstantOver2PiInEVS }

// PlanckConstantOver2PiTimesCInMeVFm returns the Planck constant over 2 pi times c in MeV fm.
func PlanckConstantOver2PiTimesCInMeVFm() codata.Constant { return planckConstantOver2PiTimesCInMeVFm }

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

// ProtonComptonWavelengthOver2Pi returns the proton Compton wavelength over 2 pi, in m.
func ProtonComptonWavelengthOver2Pi() codata.Constant { return protonComptonWavelengthOver2Pi }

// ProtonElectronMassRatio returns the proton-electron mass ratio (dimensionless).
func ProtonElectronMassRatio() codata.Constant { return protonElectronMassRatio }

// ProtonGFactor returns the proton g factor (dimensionless).
func ProtonGFactor() codata.Constant { return protonGFactor }

// ProtonGyromagRatio returns the proton gyromag. ratio, in s^-1 T^-1.
func ProtonGyromagRatio() codata.Constant { return protonGyromagRatio }

// ProtonGyromagRatioOver2Pi returns the proton gyromag. ratio over 2 pi, in MHz T^-1.
func ProtonGyromagRatioOver2Pi() codata.Constant { return protonGyromagRatioOver2Pi }

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

// ProtonRmsChargeRadius returns the proton rms charge radius, in m.
func ProtonRmsChargeRadius() codata.Constant { return protonRmsChargeRadius }

// ProtonTauMassRatio returns the proton-tau mass ratio (dimensionless).
func ProtonTauMassRatio() codata.Constant { return protonTauMassRatio }

// QuantumOfCirculation returns the quantum of circulation, in m^2 s^-1.
func QuantumOfCirculation() codata.Constant { return quantumOfCirculation }

// QuantumOfCirculationTimes2 returns the quantum of circulation times 2, in m^2 s^-1.
func QuantumOfCirculationTimes2() codata.Constant { return quantumOfCirculationTimes2 }

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

// SecondRadiationConstant returns the second radiation constant, in m K.
func SecondRadiationConstant() codata.Constant { return secondRadiationConstant }

// ShieldedHelionGyromagRatio returns the shielded helion gyromag. ratio, in s^-1 T^-1.
func ShieldedHelionGyromagRatio() codata.Constant { return shieldedHelionGyromagRatio }

// ShieldedHelionGyromagRatioOver2Pi returns the shielded helion gyromag. ratio over 2 pi, in MHz T^-1.
func ShieldedHelionGyromagRatioOver2Pi() codata.Constant { return shieldedHelionGyromagRatioOver2Pi }

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

// ShieldedProtonGyromagRatioOver2Pi returns the shielded proton gyromag. ratio over 2 pi, in MHz T^-1.
func ShieldedProtonGyromagRatioOver2Pi() codata.Constant { return shieldedProtonGyromagRatioOver2Pi }

// ShieldedProtonMagMom returns the shielded proton mag. mom., in J T^-1.
func ShieldedProtonMagMom() codata.Constant { return shieldedProtonMagMom }

// ShieldedProtonMagMomToBohrMagnetonRatio returns the shielded proton mag. mom. to Bohr magneton ratio (dimensionless).
func ShieldedProtonMagMomToBohrMagnetonRatio() codata.Constant { return shieldedProtonMagMomToBohrMagnetonRatio }

// ShieldedProtonMagMomToNuclearMagnetonRatio returns the shielded proton mag. mom. to nuclear magneton ratio (dimensionless).
func ShieldedProtonMagMomToNuclearMagnetonRatio() codata.Constant { return shieldedProtonMagMomToNuclearMagnetonRatio }

// SpeedOfLightInVacuum returns the speed of light in vacuum, exact.
func SpeedOfLightInVacuum() codata.Constant { return speedOfLightInVacuum }

// StandardAccelerationOfGravity returns the standard acceleration of gravity, in m s^-2, exact.
func StandardAccelerationOfGravity() codata.Constant { return standardAccelerationOfGravity }

// StandardAtmosphere returns the standard atmosphere, in Pa, exact.
func StandardAtmosphere() codata.Constant { return standardAtmosphere }

// StefanBoltzmannConstant returns the Stefan-Boltzmann constant, in W m^-2 K^-4.
func StefanBoltzmannConstant() codata.Constant { return stefanBoltzmannConstant }

// TauComptonWavelength returns the tau Compton wavelength, in m.
func TauComptonWavelength() codata.Constant { return tauComptonWavelength }

// TauComptonWavelengthOver2Pi returns the tau Compton wavelength over 2 pi, in m.
func TauComptonWavelengthOver2Pi() codata.Constant { return tauComptonWavelengthOver2Pi }

// TauElectronMassRatio returns the tau-electron mass ratio (dimensionless).
func TauElectronMassRatio() codata.Constant { return tauElectronMassRatio }

// TauMass returns the tau mass, in kg.
func TauMass() codata.Constant { return tauMass }

// TauMassEnergyEquivalent returns the tau mass energy equivalent, in J.
func TauMassEnergyEquivalent() codata.Constant { return tauMassEnergyEquivalent }

// TauMassEnergyEquivalentInMeV returns the tau mass energy equivalent in MeV.
func TauMassEnergyEquivalentInMeV() codata.Constant { return tauMassEnergyEquivalentInMeV }

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

// TritonElectronMagMomRatio returns the triton-electron mag. mom. ratio (dimensionless).
func TritonElectronMagMomRatio() codata.Constant { return tritonElectronMagMomRatio }

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

// TritonNeutronMagMomRatio returns the triton-neutron mag. mom. ratio (dimensionless).
func TritonNeutronMagMomRatio() codata.Constant { return tritonNeutronMagMomRatio }

// TritonProtonMagMomRatio returns the triton-proton mag. mom. ratio (dimensionless).
func TritonProtonMagMomRatio() codata.Constant { return tritonProtonMagMomRatio }

// TritonProtonMassRatio returns the triton-proton mass ratio (dimensionless).
func TritonProtonMassRatio() codata.Constant { return tritonProtonMassRatio }

// UnifiedAtomicMassUnit returns the unified atomic mass unit, in kg.
func UnifiedAtomicMassUnit() codata.Constant { return unifiedAtomicMassUnit }

// VonKlitzingConstant returns the von Klitzing constant, in ohm.
func VonKlitzingConstant() codata.Constant { return vonKlitzingConstant }

// WeakMixingAngle returns the weak mixing angle (dimensionless).
func WeakMixingAngle() codata.Constant { return weakMixingAngle }

// WienFrequencyDisplacementLawConstant returns the Wien frequency displacement law constant, in Hz K^-1.
func WienFrequencyDisplacementLawConstant() codata.Constant { return wienFrequencyDisplacementLawConstant }

// WienWavelengthDisplacementLawConstant returns the Wien wavelength displacement law constant, in m K.
func WienWavelengthDisplacementLawConstant() codata.Constant { return wienWavelengthDisplacementLawConstant }

// table is built on first use.
var table = sync.OnceValue(func() *codata.Table {
	return codata.NewTable(Revision,
		latticeSpacingOfSilicon,
		alphaParticleElectronMassRatio,
		alphaParticleMass,
		alphaParticleMassEnergyEquivalent,
		alphaParticleMassEnergyEquivalentInMeV,
		alphaParticleMassInU,
		alphaParticleMolarMass,
		alphaParticleProtonMassRatio,
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
		bohrMagnetonInInverseMetersPerTesla,
		bohrMagnetonInKT,
		bohrRadius,
		boltzmannConstant,
		boltzmannConstantInEVK,
		boltzmannConstantInHzK,
		boltzmannConstantInInverseMetersPerKelvin,
		characteristicImpedanceOfVacuum,
		classicalElectronRadius,
		comptonWavelength,
		comptonWavelengthOver2Pi,
		conductanceQuantum,
		conventionalValueOfJosephsonConstant,
		conventionalValueOfVonKlitzingConstant,
		cuXUnit,
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
		deuteronRmsChargeRadius,
		electricConstant,
		electronChargeToMassQuotient,
		electronDeuteronMagMomRatio,
		electronDeuteronMassRatio,
		electronGFactor,
		electronGyromagRatio,
		electronGyromagRatioOver2Pi,
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
		electronTauMassRatio,
		electronToAlphaParticleMassRatio,
		electronToShieldedHelionMagMomRatio,
		electronToShieldedProtonMagMomRatio,
		electronVolt,
		electronVoltAtomicMassUnitRelationship,
		electronVoltHartreeRelationship,
		electronVoltHertzRelationship,
		electronVoltInverseMeterRelationship,
		electronVoltJouleRelationship,
		electronVoltKelvinRelationship,
		electronVoltKilogramRelationship,
		elementaryCharge,
		elementaryChargeOverH,
		faradayConstant,
		faradayConstantForConventionalElectricCurrent,
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
		helionMass,
		helionMassEnergyEquivalent,
		helionMassEnergyEquivalentInMeV,
		helionMassInU,
		helionMolarMass,
		helionProtonMassRatio,
		hertzAtomicMassUnitRelationship,
		hertzElectronVoltRelationship,
		hertzHartreeRelationship,
		hertzInverseMeterRelationship,
		hertzJouleRelationship,
		hertzKelvinRelationship,
		hertzKilogramRelationship,
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
		loschmidtConstant27315K101325KPa,
		magConstant,
		magFluxQuantum,
		molarGasConstant,
		molarMassConstant,
		molarMassOfCarbon12,
		molarPlanckConstant,
		molarPlanckConstantTimesC,
		molarVolumeOfIdealGas27315K100KPa,
		molarVolumeOfIdealGas27315K101325KPa,
		molarVolumeOfSilicon,
		moXUnit,
		muonComptonWavelength,
		muonComptonWavelengthOver2Pi,
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
		neutronComptonWavelengthOver2Pi,
		neutronElectronMagMomRatio,
		neutronElectronMassRatio,
		neutronGFactor,
		neutronGyromagRatio,
		neutronGyromagRatioOver2Pi,
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
		neutronProtonMassRatio,
		neutronTauMassRatio,
		neutronToShieldedProtonMagMomRatio,
		newtonianConstantOfGravitation,
		newtonianConstantOfGravitationOverHBarC,
		nuclearMagneton,
		nuclearMagnetonInEVT,
		nuclearMagnetonInInverseMetersPerTesla,
		nuclearMagnetonInKT,
		nuclearMagnetonInMHzT,
		planckConstant,
		planckConstantInEVS,
		planckConstantOver2Pi,
		planckConstantOver2PiInEVS,
		planckConstantOver2PiTimesCInMeVFm,
		planckLength,
		planckMass,
		planckMassEnergyEquivalentInGeV,
		planckTemperature,
		planckTime,
		protonChargeToMassQuotient,
		protonComptonWavelength,
		protonComptonWavelengthOver2Pi,
		protonElectronMassRatio,
		protonGFactor,
		protonGyromagRatio,
		protonGyromagRatioOver2Pi,
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
		protonRmsChargeRadius,
		protonTauMassRatio,
		quantumOfCirculation,
		quantumOfCirculationTimes2,
		rydbergConstant,
		rydbergConstantTimesCInHz,
		rydbergConstantTimesHcInEV,
		rydbergConstantTimesHcInJ,
		sackurTetrodeConstant1K100KPa,
		sackurTetrodeConstant1K101325KPa,
		secondRadiationConstant,
		shieldedHelionGyromagRatio,
		shieldedHelionGyromagRatioOver2Pi,
		shieldedHelionMagMom,
		shieldedHelionMagMomToBohrMagnetonRatio,
		shieldedHelionMagMomToNuclearMagnetonRatio,
		shieldedHelionToProtonMagMomRatio,
		shieldedHelionToShieldedProtonMagMomRatio,
		shieldedProtonGyromagRatio,
		shieldedProtonGyromagRatioOver2Pi,
		shieldedProtonMagMom,
		shieldedProtonMagMomToBohrMagnetonRatio,
		shieldedProtonMagMomToNuclearMagnetonRatio,
		speedOfLightInVacuum,
		standardAccelerationOfGravity,
		standardAtmosphere,
		stefanBoltzmannConstant,
		tauComptonWavelength,
		tauComptonWavelengthOver2Pi,
		tauElectronMassRatio,
		tauMass,
		tauMassEnergyEquivalent,
		tauMassEnergyEquivalentInMeV,
		tauMassInU,
		tauMolarMass,
		tauMuonMassRatio,
		tauNeutronMassRatio,
		tauProtonMassRatio,
		thomsonCrossSection,
		tritonElectronMagMomRatio,
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
		tritonNeutronMagMomRatio,
		tritonProtonMagMomRatio,
		tritonProtonMassRatio,
		unifiedAtomicMassUnit,
		vonKlitzingConstant,
		weakMixingAngle,
		wienFrequencyDisplacementLawConstant,
		wienWavelengthDisplacementLawConstant,
	)
})

// Table returns every constant of the revision in publication order.
// Every call returns the same read-only table.
func Table() *codata.Table { return table() }

// Lookup finds a constant of this revision by its published name or key.
func Lookup(name string) (codata.Constant, error) {
	return table().Lookup(name)
}
