package codata2018_test

import (
	"github.com/katalvlaran/codata/codata2018"
	"github.com/katalvlaran/codata/internal/codatatest"
)

// published lists the literals of the 2018 adjustment, one row per constant.
var published = []codatatest.Published{
	{Constant: codata2018.AlphaParticleElectronMassRatio(), Value: 7294.29954142, Uncertainty: 2.4e-07},
	{Constant: codata2018.AlphaParticleMass(), Value: 6.6446573357e-27, Uncertainty: 2e-36},
	{Constant: codata2018.AlphaParticleMassEnergyEquivalent(), Value: 5.9719201914e-10, Uncertainty: 1.8e-19},
	{Constant: codata2018.AlphaParticleMassEnergyEquivalentInMeV(), Value: 3727.3794066, Uncertainty: 1.1e-06},
	{Constant: codata2018.AlphaParticleMassInU(), Value: 4.001506179127, Uncertainty: 6.3e-11},
	{Constant: codata2018.AlphaParticleMolarMass(), Value: 0.0040015061777, Uncertainty: 1.2e-12},
	{Constant: codata2018.AlphaParticleProtonMassRatio(), Value: 3.97259969009, Uncertainty: 2.2e-10},
	{Constant: codata2018.AlphaParticleRelativeAtomicMass(), Value: 4.001506179127, Uncertainty: 6.3e-11},
	{Constant: codata2018.AngstromStar(), Value: 1.00001495e-10, Uncertainty: 9e-17},
	{Constant: codata2018.AtomicMassConstant(), Value: 1.6605390666e-27, Uncertainty: 5e-37},
	{Constant: codata2018.AtomicMassConstantEnergyEquivalent(), Value: 1.4924180856e-10, Uncertainty: 4.5e-20},
	{Constant: codata2018.AtomicMassConstantEnergyEquivalentInMeV(), Value: 931.49410242, Uncertainty: 2.8e-07},
	{Constant: codata2018.AtomicMassUnitElectronVoltRelationship(), Value: 9.3149410242e+08, Uncertainty: 0.28},
	{Constant: codata2018.AtomicMassUnitHartreeRelationship(), Value: 3.4231776874e+07, Uncertainty: 0.01},
	{Constant: codata2018.AtomicMassUnitHertzRelationship(), Value: 2.25234271871e+23, Uncertainty: 6.8e+13},
	{Constant: codata2018.AtomicMassUnitInverseMeterRelationship(), Value: 7.5100660209e+14, Uncertainty: 230000},
	{Constant: codata2018.AtomicMassUnitJouleRelationship(), Value: 1.4924180856e-10, Uncertainty: 4.5e-20},
	{Constant: codata2018.AtomicMassUnitKelvinRelationship(), Value: 1.08095401916e+13, Uncertainty: 3300},
	{Constant: codata2018.AtomicMassUnitKilogramRelationship(), Value: 1.6605390666e-27, Uncertainty: 5e-37},
	{Constant: codata2018.AtomicUnitOf1stHyperpolarizability(), Value: 3.2063613061e-53, Uncertainty: 1.5e-62},
	{Constant: codata2018.AtomicUnitOf2ndHyperpolarizability(), Value: 6.2353799905e-65, Uncertainty: 3.8e-74},
	{Constant: codata2018.AtomicUnitOfAction(), Value: 1.054571817e-34, Uncertainty: 0},
	{Constant: codata2018.AtomicUnitOfCharge(), Value: 1.602176634e-19, Uncertainty: 0},
	{Constant: codata2018.AtomicUnitOfChargeDensity(), Value: 1.08120238457e+12, Uncertainty: 490},
	{Constant: codata2018.AtomicUnitOfCurrent(), Value: 0.00662361823751, Uncertainty: 1.3e-14},
	{Constant: codata2018.AtomicUnitOfElectricDipoleMom(), Value: 8.4783536255e-30, Uncertainty: 1.3e-39},
	{Constant: codata2018.AtomicUnitOfElectricField(), Value: 5.14220674763e+11, Uncertainty: 78},
	{Constant: codata2018.AtomicUnitOfElectricFieldGradient(), Value: 9.7173624292e+21, Uncertainty: 2.9e+12},
	{Constant: codata2018.AtomicUnitOfElectricPolarizability(), Value: 1.64877727436e-41, Uncertainty: 5e-51},
	{Constant: codata2018.AtomicUnitOfElectricPotential(), Value: 27.211386245988, Uncertainty: 5.3e-11},
	{Constant: codata2018.AtomicUnitOfElectricQuadrupoleMom(), Value: 4.4865515246e-40, Uncertainty: 1.4e-49},
	{Constant: codata2018.AtomicUnitOfEnergy(), Value: 4.3597447222071e-18, Uncertainty: 8.5e-30},
	{Constant: codata2018.AtomicUnitOfForce(), Value: 8.2387234983e-08, Uncertainty: 1.2e-17},
	{Constant: codata2018.AtomicUnitOfLength(), Value: 5.29177210903e-11, Uncertainty: 8e-21},
	{Constant: codata2018.AtomicUnitOfMagDipoleMom(), Value: 1.85480201566e-23, Uncertainty: 5.6e-33},
	{Constant: codata2018.AtomicUnitOfMagFluxDensity(), Value: 235051.756758, Uncertainty: 7.1e-05},
	{Constant: codata2018.AtomicUnitOfMagnetizability(), Value: 7.8910366008e-29, Uncertainty: 4.8e-38},
	{Constant: codata2018.AtomicUnitOfMass(), Value: 9.1093837015e-31, Uncertainty: 2.8e-40},
	{Constant: codata2018.AtomicUnitOfMomentum(), Value: 1.9928519141e-24, Uncertainty: 3e-34},
	{Constant: codata2018.AtomicUnitOfPermittivity(), Value: 1.11265005545e-10, Uncertainty: 1.7e-20},
	{Constant: codata2018.AtomicUnitOfTime(), Value: 2.4188843265857e-17, Uncertainty: 4.7e-29},
	{Constant: codata2018.AtomicUnitOfVelocity(), Value: 2.18769126364e+06, Uncertainty: 0.00033},
	{Constant: codata2018.AvogadroConstant(), Value: 6.02214076e+23, Uncertainty: 0},
	{Constant: codata2018.BohrMagneton(), Value: 9.2740100783e-24, Uncertainty: 2.8e-33},
	{Constant: codata2018.BohrMagnetonInEVT(), Value: 5.788381806e-05, Uncertainty: 1.7e-14},
	{Constant: codata2018.BohrMagnetonInHzT(), Value: 1.39962449361e+10, Uncertainty: 4.2},
	{Constant: codata2018.BohrMagnetonInInverseMeterPerTesla(), Value: 46.686447783, Uncertainty: 1.4e-08},
	{Constant: codata2018.BohrMagnetonInKT(), Value: 0.67171381563, Uncertainty: 2e-10},
	{Constant: codata2018.BohrRadius(), Value: 5.29177210903e-11, Uncertainty: 8e-21},
	{Constant: codata2018.BoltzmannConstant(), Value: 1.380649e-23, Uncertainty: 0},
	{Constant: codata2018.BoltzmannConstantInEVK(), Value: 8.617333262e-05, Uncertainty: 0},
	{Constant: codata2018.BoltzmannConstantInHzK(), Value: 2.083661912e+10, Uncertainty: 0},
	{Constant: codata2018.BoltzmannConstantInInverseMeterPerKelvin(), Value: 69.50348004, Uncertainty: 0},
	{Constant: codata2018.CharacteristicImpedanceOfVacuum(), Value: 376.730313668, Uncertainty: 5.7e-08},
	{Constant: codata2018.ClassicalElectronRadius(), Value: 2.8179403262e-15, Uncertainty: 1.3e-24},
	{Constant: codata2018.ComptonWavelength(), Value: 2.42631023867e-12, Uncertainty: 7.3e-22},
	{Constant: codata2018.ConductanceQuantum(), Value: 7.748091729e-05, Uncertainty: 0},
	{Constant: codata2018.ConventionalValueOfAmpere90(), Value: 1.00000008887, Uncertainty: 0},
	{Constant: codata2018.ConventionalValueOfCoulomb90(), Value: 1.00000008887, Uncertainty: 0},
	{Constant: codata2018.ConventionalValueOfFarad90(), Value: 0.9999999822, Uncertainty: 0},
	{Constant: codata2018.ConventionalValueOfHenry90(), Value: 1.00000001779, Uncertainty: 0},
	{Constant: codata2018.ConventionalValueOfJosephsonConstant(), Value: 4.835979e+14, Uncertainty: 0},
	{Constant: codata2018.ConventionalValueOfOhm90(), Value: 1.00000001779, Uncertainty: 0},
	{Constant: codata2018.ConventionalValueOfVolt90(), Value: 1.00000010666, Uncertainty: 0},
	{Constant: codata2018.ConventionalValueOfVonKlitzingConstant(), Value: 25812.807, Uncertainty: 0},
	{Constant: codata2018.ConventionalValueOfWatt90(), Value: 1.00000019553, Uncertainty: 0},
	{Constant: codata2018.CopperXUnit(), Value: 1.00207697e-13, Uncertainty: 2.8e-20},
	{Constant: codata2018.DeuteronElectronMagMomRatio(), Value: -0.0004664345551, Uncertainty: 1.2e-12},
	{Constant: codata2018.DeuteronElectronMassRatio(), Value: 3670.48296788, Uncertainty: 1.3e-07},
	{Constant: codata2018.DeuteronGFactor(), Value: 0.8574382338, Uncertainty: 2.2e-09},
	{Constant: codata2018.DeuteronMagMom(), Value: 4.330735094e-27, Uncertainty: 1.1e-35},
	{Constant: codata2018.DeuteronMagMomToBohrMagnetonRatio(), Value: 0.000466975457, Uncertainty: 1.2e-12},
	{Constant: codata2018.DeuteronMagMomToNuclearMagnetonRatio(), Value: 0.8574382338, Uncertainty: 2.2e-09},
	{Constant: codata2018.DeuteronMass(), Value: 3.3435837724e-27, Uncertainty: 1e-36},
	{Constant: codata2018.DeuteronMassEnergyEquivalent(), Value: 3.00506323102e-10, Uncertainty: 9.1e-20},
	{Constant: codata2018.DeuteronMassEnergyEquivalentInMeV(), Value: 1875.61294257, Uncertainty: 5.7e-07},
	{Constant: codata2018.DeuteronMassInU(), Value: 2.013553212745, Uncertainty: 4e-11},
	{Constant: codata2018.DeuteronMolarMass(), Value: 0.00201355321205, Uncertainty: 6.1e-13},
	{Constant: codata2018.DeuteronNeutronMagMomRatio(), Value: -0.44820653, Uncertainty: 1.1e-07},
	{Constant: codata2018.DeuteronProtonMagMomRatio(), Value: 0.30701220939, Uncertainty: 7.9e-10},
	{Constant: codata2018.DeuteronProtonMassRatio(), Value: 1.99900750139, Uncertainty: 1.1e-10},
	{Constant: codata2018.DeuteronRelativeAtomicMass(), Value: 2.013553212745, Uncertainty: 4e-11},
	{Constant: codata2018.DeuteronRmsChargeRadius(), Value: 2.12799e-15, Uncertainty: 7.4e-19},
	{Constant: codata2018.ElectronChargeToMassQuotient(), Value: -1.75882001076e+11, Uncertainty: 53},
	{Constant: codata2018.ElectronDeuteronMagMomRatio(), Value: -2143.9234915, Uncertainty: 5.6e-06},
	{Constant: codata2018.ElectronDeuteronMassRatio(), Value: 0.0002724437107462, Uncertainty: 9.6e-15},
	{Constant: codata2018.ElectronGFactor(), Value: -2.00231930436256, Uncertainty: 3.5e-13},
	{Constant: codata2018.ElectronGyromagRatio(), Value: 1.76085963023e+11, Uncertainty: 53},
	{Constant: codata2018.ElectronGyromagRatioInMHzT(), Value: 28024.9514242, Uncertainty: 8.5e-06},
	{Constant: codata2018.ElectronHelionMassRatio(), Value: 0.0001819543074573, Uncertainty: 7.9e-15},
	{Constant: codata2018.ElectronMagMom(), Value: -9.2847647043e-24, Uncertainty: 2.8e-33},
	{Constant: codata2018.ElectronMagMomAnomaly(), Value: 0.00115965218128, Uncertainty: 1.8e-13},
	{Constant: codata2018.ElectronMagMomToBohrMagnetonRatio(), Value: -1.00115965218128, Uncertainty: 1.8e-13},
	{Constant: codata2018.ElectronMagMomToNuclearMagnetonRatio(), Value: -1838.28197188, Uncertainty: 1.1e-07},
	{Constant: codata2018.ElectronMass(), Value: 9.1093837015e-31, Uncertainty: 2.8e-40},
	{Constant: codata2018.ElectronMassEnergyEquivalent(), Value: 8.1871057769e-14, Uncertainty: 2.5e-23},
	{Constant: codata2018.ElectronMassEnergyEquivalentInMeV(), Value: 0.51099895, Uncertainty: 1.5e-10},
	{Constant: codata2018.ElectronMassInU(), Value: 0.000548579909065, Uncertainty: 1.6e-14},
	{Constant: codata2018.ElectronMolarMass(), Value: 5.4857990888e-07, Uncertainty: 1.7e-16},
	{Constant: codata2018.ElectronMuonMagMomRatio(), Value: 206.7669883, Uncertainty: 4.6e-06},
	{Constant: codata2018.ElectronMuonMassRatio(), Value: 0.00483633169, Uncertainty: 1.1e-10},
	{Constant: codata2018.ElectronNeutronMagMomRatio(), Value: 960.9205, Uncertainty: 0.00023},
	{Constant: codata2018.ElectronNeutronMassRatio(), Value: 0.00054386734424, Uncertainty: 2.6e-13},
	{Constant: codata2018.ElectronProtonMagMomRatio(), Value: -658.21068789, Uncertainty: 2e-07},
	{Constant: codata2018.ElectronProtonMassRatio(), Value: 0.000544617021487, Uncertainty: 3.3e-14},
	{Constant: codata2018.ElectronRelativeAtomicMass(), Value: 0.000548579909065, Uncertainty: 1.6e-14},
	{Constant: codata2018.ElectronTauMassRatio(), Value: 0.000287585, Uncertainty: 1.9e-08},
	{Constant: codata2018.ElectronToAlphaParticleMassRatio(), Value: 0.0001370933554787, Uncertainty: 4.5e-15},
	{Constant: codata2018.ElectronToShieldedHelionMagMomRatio(), Value: 864.058257, Uncertainty: 1e-05},
	{Constant: codata2018.ElectronToShieldedProtonMagMomRatio(), Value: -658.2275971, Uncertainty: 7.2e-06},
	{Constant: codata2018.ElectronTritonMassRatio(), Value: 0.0001819200062251, Uncertainty: 9e-15},
	{Constant: codata2018.ElectronVolt(), Value: 1.602176634e-19, Uncertainty: 0},
	{Constant: codata2018.ElectronVoltAtomicMassUnitRelationship(), Value: 1.07354410233e-09, Uncertainty: 3.2e-19},
	{Constant: codata2018.ElectronVoltHartreeRelationship(), Value: 0.036749322175655, Uncertainty: 7.1e-14},
	{Constant: codata2018.ElectronVoltHertzRelationship(), Value: 2.417989242e+14, Uncertainty: 0},
	{Constant: codata2018.ElectronVoltInverseMeterRelationship(), Value: 806554.3937, Uncertainty: 0},
	{Constant: codata2018.ElectronVoltJouleRelationship(), Value: 1.602176634e-19, Uncertainty: 0},
	{Constant: codata2018.ElectronVoltKelvinRelationship(), Value: 11604.51812, Uncertainty: 0},
	{Constant: codata2018.ElectronVoltKilogramRelationship(), Value: 1.782661921e-36, Uncertainty: 0},
	{Constant: codata2018.ElementaryCharge(), Value: 1.602176634e-19, Uncertainty: 0},
	{Constant: codata2018.ElementaryChargeOverHBar(), Value: 1.519267447e+15, Uncertainty: 0},
	{Constant: codata2018.FaradayConstant(), Value: 96485.33212, Uncertainty: 0},
	{Constant: codata2018.FermiCouplingConstant(), Value: 1.1663787e-05, Uncertainty: 6e-12},
	{Constant: codata2018.FineStructureConstant(), Value: 0.0072973525693, Uncertainty: 1.1e-12},
	{Constant: codata2018.FirstRadiationConstant(), Value: 3.741771852e-16, Uncertainty: 0},
	{Constant: codata2018.FirstRadiationConstantForSpectralRadiance(), Value: 1.191042972e-16, Uncertainty: 0},
	{Constant: codata2018.HartreeAtomicMassUnitRelationship(), Value: 2.92126232205e-08, Uncertainty: 8.8e-18},
	{Constant: codata2018.HartreeElectronVoltRelationship(), Value: 27.211386245988, Uncertainty: 5.3e-11},
	{Constant: codata2018.HartreeEnergy(), Value: 4.3597447222071e-18, Uncertainty: 8.5e-30},
	{Constant: codata2018.HartreeEnergyInEV(), Value: 27.211386245988, Uncertainty: 5.3e-11},
	{Constant: codata2018.HartreeHertzRelationship(), Value: 6.579683920502e+15, Uncertainty: 13000},
	{Constant: codata2018.HartreeInverseMeterRelationship(), Value: 2.194746313632e+07, Uncertainty: 4.3e-05},
	{Constant: codata2018.HartreeJouleRelationship(), Value: 4.3597447222071e-18, Uncertainty: 8.5e-30},
	{Constant: codata2018.HartreeKelvinRelationship(), Value: 315775.02480407, Uncertainty: 6.1e-07},
	{Constant: codata2018.HartreeKilogramRelationship(), Value: 4.8508702095432e-35, Uncertainty: 9.4e-47},
	{Constant: codata2018.HelionElectronMassRatio(), Value: 5495.88528007, Uncertainty: 2.4e-07},
	{Constant: codata2018.HelionGFactor(), Value: -4.255250615, Uncertainty: 5e-08},
	{Constant: codata2018.HelionMagMom(), Value: -1.074617532e-26, Uncertainty: 1.3e-34},
	{Constant: codata2018.HelionMagMomToBohrMagnetonRatio(), Value: -0.001158740958, Uncertainty: 1.4e-11},
	{Constant: codata2018.HelionMagMomToNuclearMagnetonRatio(), Value: -2.127625307, Uncertainty: 2.5e-08},
	{Constant: codata2018.HelionMass(), Value: 5.0064127796e-27, Uncertainty: 1.5e-36},
	{Constant: codata2018.HelionMassEnergyEquivalent(), Value: 4.4995394125e-10, Uncertainty: 1.4e-19},
	{Constant: codata2018.HelionMassEnergyEquivalentInMeV(), Value: 2808.39160743, Uncertainty: 8.5e-07},
	{Constant: codata2018.HelionMassInU(), Value: 3.014932247175, Uncertainty: 9.7e-11},
	{Constant: codata2018.HelionMolarMass(), Value: 0.00301493224613, Uncertainty: 9.1e-13},
	{Constant: codata2018.HelionProtonMassRatio(), Value: 2.99315267167, Uncertainty: 1.3e-10},
	{Constant: codata2018.HelionRelativeAtomicMass(), Value: 3.014932247175, Uncertainty: 9.7e-11},
	{Constant: codata2018.HelionShieldingShift(), Value: 5.996743e-05, Uncertainty: 1e-10},
	{Constant: codata2018.HertzAtomicMassUnitRelationship(), Value: 4.4398216652e-24, Uncertainty: 1.3e-33},
	{Constant: codata2018.HertzElectronVoltRelationship(), Value: 4.135667696e-15, Uncertainty: 0},
	{Constant: codata2018.HertzHartreeRelationship(), Value: 1.519829846057e-16, Uncertainty: 2.9e-28},
	{Constant: codata2018.HertzInverseMeterRelationship(), Value: 3.335640951e-09, Uncertainty: 0},
	{Constant: codata2018.HertzJouleRelationship(), Value: 6.62607015e-34, Uncertainty: 0},
	{Constant: codata2018.HertzKelvinRelationship(), Value: 4.799243073e-11, Uncertainty: 0},
	{Constant: codata2018.HertzKilogramRelationship(), Value: 7.372497323e-51, Uncertainty: 0},
	{Constant: codata2018.HyperfineTransitionFrequencyOfCs133(), Value: 9.19263177e+09, Uncertainty: 0},
	{Constant: codata2018.InverseFineStructureConstant(), Value: 137.035999084, Uncertainty: 2.1e-08},
	{Constant: codata2018.InverseMeterAtomicMassUnitRelationship(), Value: 1.3310250501e-15, Uncertainty: 4e-25},
	{Constant: codata2018.InverseMeterElectronVoltRelationship(), Value: 1.239841984e-06, Uncertainty: 0},
	{Constant: codata2018.InverseMeterHartreeRelationship(), Value: 4.556335252912e-08, Uncertainty: 8.8e-20},
	{Constant: codata2018.InverseMeterHertzRelationship(), Value: 2.99792458e+08, Uncertainty: 0},
	{Constant: codata2018.InverseMeterJouleRelationship(), Value: 1.986445857e-25, Uncertainty: 0},
	{Constant: codata2018.InverseMeterKelvinRelationship(), Value: 0.01438776877, Uncertainty: 0},
	{Constant: codata2018.InverseMeterKilogramRelationship(), Value: 2.210219094e-42, Uncertainty: 0},
	{Constant: codata2018.InverseOfConductanceQuantum(), Value: 12906.40372, Uncertainty: 0},
	{Constant: codata2018.JosephsonConstant(), Value: 4.835978484e+14, Uncertainty: 0},
	{Constant: codata2018.JouleAtomicMassUnitRelationship(), Value: 6.7005352565e+09, Uncertainty: 2},
	{Constant: codata2018.JouleElectronVoltRelationship(), Value: 6.241509074e+18, Uncertainty: 0},
	{Constant: codata2018.JouleHartreeRelationship(), Value: 2.2937122783963e+17, Uncertainty: 450000},
	{Constant: codata2018.JouleHertzRelationship(), Value: 1.509190179e+33, Uncertainty: 0},
	{Constant: codata2018.JouleInverseMeterRelationship(), Value: 5.034116567e+24, Uncertainty: 0},
	{Constant: codata2018.JouleKelvinRelationship(), Value: 7.242970516e+22, Uncertainty: 0},
	{Constant: codata2018.JouleKilogramRelationship(), Value: 1.112650056e-17, Uncertainty: 0},
	{Constant: codata2018.KelvinAtomicMassUnitRelationship(), Value: 9.2510873014e-14, Uncertainty: 2.8e-23},
	{Constant: codata2018.KelvinElectronVoltRelationship(), Value: 8.617333262e-05, Uncertainty: 0},
	{Constant: codata2018.KelvinHartreeRelationship(), Value: 3.1668115634556e-06, Uncertainty: 6.1e-18},
	{Constant: codata2018.KelvinHertzRelationship(), Value: 2.083661912e+10, Uncertainty: 0},
	{Constant: codata2018.KelvinInverseMeterRelationship(), Value: 69.50348004, Uncertainty: 0},
	{Constant: codata2018.KelvinJouleRelationship(), Value: 1.380649e-23, Uncertainty: 0},
	{Constant: codata2018.KelvinKilogramRelationship(), Value: 1.536179187e-40, Uncertainty: 0},
	{Constant: codata2018.KilogramAtomicMassUnitRelationship(), Value: 6.0221407621e+26, Uncertainty: 1.8e+17},
	{Constant: codata2018.KilogramElectronVoltRelationship(), Value: 5.609588603e+35, Uncertainty: 0},
	{Constant: codata2018.KilogramHartreeRelationship(), Value: 2.0614857887409e+34, Uncertainty: 4e+22},
	{Constant: codata2018.KilogramHertzRelationship(), Value: 1.356392489e+50, Uncertainty: 0},
	{Constant: codata2018.KilogramInverseMeterRelationship(), Value: 4.524438335e+41, Uncertainty: 0},
	{Constant: codata2018.KilogramJouleRelationship(), Value: 8.987551787e+16, Uncertainty: 0},
	{Constant: codata2018.KilogramKelvinRelationship(), Value: 6.50965726e+39, Uncertainty: 0},
	{Constant: codata2018.LatticeParameterOfSilicon(), Value: 5.431020511e-10, Uncertainty: 8.9e-18},
	{Constant: codata2018.LatticeSpacingOfIdealSi220(), Value: 1.920155716e-10, Uncertainty: 3.2e-18},
	{Constant: codata2018.LoschmidtConstant27315K100KPa(), Value: 2.651645804e+25, Uncertainty: 0},
	{Constant: codata2018.LoschmidtConstant27315K101325KPa(), Value: 2.686780111e+25, Uncertainty: 0},
	{Constant: codata2018.LuminousEfficacy(), Value: 683, Uncertainty: 0},
	{Constant: codata2018.MagFluxQuantum(), Value: 2.067833848e-15, Uncertainty: 0},
	{Constant: codata2018.MolarGasConstant(), Value: 8.314462618, Uncertainty: 0},
	{Constant: codata2018.MolarMassConstant(), Value: 0.00099999999965, Uncertainty: 3e-13},
	{Constant: codata2018.MolarMassOfCarbon12(), Value: 0.0119999999958, Uncertainty: 3.6e-12},
	{Constant: codata2018.MolarPlanckConstant(), Value: 3.990312712e-10, Uncertainty: 0},
	{Constant: codata2018.MolarVolumeOfIdealGas27315K100KPa(), Value: 0.02271095464, Uncertainty: 0},
	{Constant: codata2018.MolarVolumeOfIdealGas27315K101325KPa(), Value: 0.02241396954, Uncertainty: 0},
	{Constant: codata2018.MolarVolumeOfSilicon(), Value: 1.205883199e-05, Uncertainty: 6e-13},
	{Constant: codata2018.MolybdenumXUnit(), Value: 1.00209952e-13, Uncertainty: 5.3e-20},
	{Constant: codata2018.MuonComptonWavelength(), Value: 1.17344411e-14, Uncertainty: 2.6e-22},
	{Constant: codata2018.MuonElectronMassRatio(), Value: 206.768283, Uncertainty: 4.6e-06},
	{Constant: codata2018.MuonGFactor(), Value: -2.0023318418, Uncertainty: 1.3e-09},
	{Constant: codata2018.MuonMagMom(), Value: -4.4904483e-26, Uncertainty: 1e-33},
	{Constant: codata2018.MuonMagMomAnomaly(), Value: 0.00116592089, Uncertainty: 6.3e-10},
	{Constant: codata2018.MuonMagMomToBohrMagnetonRatio(), Value: -0.00484197047, Uncertainty: 1.1e-10},
	{Constant: codata2018.MuonMagMomToNuclearMagnetonRatio(), Value: -8.89059703, Uncertainty: 2e-07},
	{Constant: codata2018.MuonMass(), Value: 1.883531627e-28, Uncertainty: 4.2e-36},
	{Constant: codata2018.MuonMassEnergyEquivalent(), Value: 1.692833804e-11, Uncertainty: 3.8e-19},
	{Constant: codata2018.MuonMassEnergyEquivalentInMeV(), Value: 105.6583755, Uncertainty: 2.3e-06},
	{Constant: codata2018.MuonMassInU(), Value: 0.1134289259, Uncertainty: 2.5e-09},
	{Constant: codata2018.MuonMolarMass(), Value: 0.0001134289259, Uncertainty: 2.5e-12},
	{Constant: codata2018.MuonNeutronMassRatio(), Value: 0.112454517, Uncertainty: 2.5e-09},
	{Constant: codata2018.MuonProtonMagMomRatio(), Value: -3.183345142, Uncertainty: 7.1e-08},
	{Constant: codata2018.MuonProtonMassRatio(), Value: 0.1126095264, Uncertainty: 2.5e-09},
	{Constant: codata2018.MuonTauMassRatio(), Value: 0.0594635, Uncertainty: 4e-06},
	{Constant: codata2018.NaturalUnitOfAction(), Value: 1.054571817e-34, Uncertainty: 0},
	{Constant: codata2018.NaturalUnitOfActionInEVS(), Value: 6.582119569e-16, Uncertainty: 0},
	{Constant: codata2018.NaturalUnitOfEnergy(), Value: 8.1871057769e-14, Uncertainty: 2.5e-23},
	{Constant: codata2018.NaturalUnitOfEnergyInMeV(), Value: 0.51099895, Uncertainty: 1.5e-10},
	{Constant: codata2018.NaturalUnitOfLength(), Value: 3.8615926796e-13, Uncertainty: 1.2e-22},
	{Constant: codata2018.NaturalUnitOfMass(), Value: 9.1093837015e-31, Uncertainty: 2.8e-40},
	{Constant: codata2018.NaturalUnitOfMomentum(), Value: 2.73092453075e-22, Uncertainty: 8.2e-32},
	{Constant: codata2018.NaturalUnitOfMomentumInMeVC(), Value: 0.51099895, Uncertainty: 1.5e-10},
	{Constant: codata2018.NaturalUnitOfTime(), Value: 1.28808866819e-21, Uncertainty: 3.9e-31},
	{Constant: codata2018.NaturalUnitOfVelocity(), Value: 2.99792458e+08, Uncertainty: 0},
	{Constant: codata2018.NeutronComptonWavelength(), Value: 1.31959090581e-15, Uncertainty: 7.5e-25},
	{Constant: codata2018.NeutronElectronMagMomRatio(), Value: 0.00104066882, Uncertainty: 2.5e-10},
	{Constant: codata2018.NeutronElectronMassRatio(), Value: 1838.68366173, Uncertainty: 8.9e-07},
	{Constant: codata2018.NeutronGFactor(), Value: -3.82608545, Uncertainty: 9e-07},
	{Constant: codata2018.NeutronGyromagRatio(), Value: 1.83247171e+08, Uncertainty: 43},
	{Constant: codata2018.NeutronGyromagRatioInMHzT(), Value: 29.1646931, Uncertainty: 6.9e-06},
	{Constant: codata2018.NeutronMagMom(), Value: -9.6623651e-27, Uncertainty: 2.3e-33},
	{Constant: codata2018.NeutronMagMomToBohrMagnetonRatio(), Value: -0.00104187563, Uncertainty: 2.5e-10},
	{Constant: codata2018.NeutronMagMomToNuclearMagnetonRatio(), Value: -1.91304273, Uncertainty: 4.5e-07},
	{Constant: codata2018.NeutronMass(), Value: 1.67492749804e-27, Uncertainty: 9.5e-37},
	{Constant: codata2018.NeutronMassEnergyEquivalent(), Value: 1.50534976287e-10, Uncertainty: 8.6e-20},
	{Constant: codata2018.NeutronMassEnergyEquivalentInMeV(), Value: 939.56542052, Uncertainty: 5.4e-07},
	{Constant: codata2018.NeutronMassInU(), Value: 1.00866491595, Uncertainty: 4.9e-10},
	{Constant: codata2018.NeutronMolarMass(), Value: 0.0010086649156, Uncertainty: 5.7e-13},
	{Constant: codata2018.NeutronMuonMassRatio(), Value: 8.89248406, Uncertainty: 2e-07},
	{Constant: codata2018.NeutronProtonMagMomRatio(), Value: -0.68497934, Uncertainty: 1.6e-07},
	{Constant: codata2018.NeutronProtonMassDifference(), Value: 2.30557435e-30, Uncertainty: 8.2e-37},
	{Constant: codata2018.NeutronProtonMassDifferenceEnergyEquivalent(), Value: 2.07214689e-13, Uncertainty: 7.4e-20},
	{Constant: codata2018.NeutronProtonMassDifferenceEnergyEquivalentInMeV(), Value: 1.29333236, Uncertainty: 4.6e-07},
	{Constant: codata2018.NeutronProtonMassDifferenceInU(), Value: 0.00138844933, Uncertainty: 4.9e-10},
	{Constant: codata2018.NeutronProtonMassRatio(), Value: 1.00137841931, Uncertainty: 4.9e-10},
	{Constant: codata2018.NeutronRelativeAtomicMass(), Value: 1.00866491595, Uncertainty: 4.9e-10},
	{Constant: codata2018.NeutronTauMassRatio(), Value: 0.528779, Uncertainty: 3.6e-05},
	{Constant: codata2018.NeutronToShieldedProtonMagMomRatio(), Value: -0.68499694, Uncertainty: 1.6e-07},
	{Constant: codata2018.NewtonianConstantOfGravitation(), Value: 6.6743e-11, Uncertainty: 1.5e-15},
	{Constant: codata2018.NewtonianConstantOfGravitationOverHBarC(), Value: 6.70883e-39, Uncertainty: 1.5e-43},
	{Constant: codata2018.NuclearMagneton(), Value: 5.0507837461e-27, Uncertainty: 1.5e-36},
	{Constant: codata2018.NuclearMagnetonInEVT(), Value: 3.15245125844e-08, Uncertainty: 9.6e-18},
	{Constant: codata2018.NuclearMagnetonInInverseMeterPerTesla(), Value: 0.0254262341353, Uncertainty: 7.8e-12},
	{Constant: codata2018.NuclearMagnetonInKT(), Value: 0.00036582677756, Uncertainty: 1.1e-13},
	{Constant: codata2018.NuclearMagnetonInMHzT(), Value: 7.6225932291, Uncertainty: 2.3e-09},
	{Constant: codata2018.PlanckConstant(), Value: 6.62607015e-34, Uncertainty: 0},
	{Constant: codata2018.PlanckConstantInEVHz(), Value: 4.135667696e-15, Uncertainty: 0},
	{Constant: codata2018.PlanckLength(), Value: 1.616255e-35, Uncertainty: 1.8e-40},
	{Constant: codata2018.PlanckMass(), Value: 2.176434e-08, Uncertainty: 2.4e-13},
	{Constant: codata2018.PlanckMassEnergyEquivalentInGeV(), Value: 1.22089e+19, Uncertainty: 1.4e+14},
	{Constant: codata2018.PlanckTemperature(), Value: 1.416784e+32, Uncertainty: 1.6e+27},
	{Constant: codata2018.PlanckTime(), Value: 5.391247e-44, Uncertainty: 6e-49},
	{Constant: codata2018.ProtonChargeToMassQuotient(), Value: 9.578833156e+07, Uncertainty: 0.029},
	{Constant: codata2018.ProtonComptonWavelength(), Value: 1.32140985539e-15, Uncertainty: 4e-25},
	{Constant: codata2018.ProtonElectronMassRatio(), Value: 1836.15267343, Uncertainty: 1.1e-07},
	{Constant: codata2018.ProtonGFactor(), Value: 5.5856946893, Uncertainty: 1.6e-09},
	{Constant: codata2018.ProtonGyromagRatio(), Value: 2.6752218744e+08, Uncertainty: 0.11},
	{Constant: codata2018.ProtonGyromagRatioInMHzT(), Value: 42.577478518, Uncertainty: 1.8e-08},
	{Constant: codata2018.ProtonMagMom(), Value: 1.41060679736e-26, Uncertainty: 6e-36},
	{Constant: codata2018.ProtonMagMomToBohrMagnetonRatio(), Value: 0.0015210322023, Uncertainty: 4.6e-13},
	{Constant: codata2018.ProtonMagMomToNuclearMagnetonRatio(), Value: 2.79284734463, Uncertainty: 8.2e-10},
	{Constant: codata2018.ProtonMagShieldingCorrection(), Value: 2.5689e-05, Uncertainty: 1.1e-08},
	{Constant: codata2018.ProtonMass(), Value: 1.67262192369e-27, Uncertainty: 5.1e-37},
	{Constant: codata2018.ProtonMassEnergyEquivalent(), Value: 1.50327761598e-10, Uncertainty: 4.6e-20},
	{Constant: codata2018.ProtonMassEnergyEquivalentInMeV(), Value: 938.27208816, Uncertainty: 2.9e-07},
	{Constant: codata2018.ProtonMassInU(), Value: 1.007276466621, Uncertainty: 5.3e-11},
	{Constant: codata2018.ProtonMolarMass(), Value: 0.00100727646627, Uncertainty: 3.1e-13},
	{Constant: codata2018.ProtonMuonMassRatio(), Value: 8.88024337, Uncertainty: 2e-07},
	{Constant: codata2018.ProtonNeutronMagMomRatio(), Value: -1.45989805, Uncertainty: 3.4e-07},
	{Constant: codata2018.ProtonNeutronMassRatio(), Value: 0.99862347812, Uncertainty: 4.9e-10},
	{Constant: codata2018.ProtonRelativeAtomicMass(), Value: 1.007276466621, Uncertainty: 5.3e-11},
	{Constant: codata2018.ProtonRmsChargeRadius(), Value: 8.414e-16, Uncertainty: 1.9e-18},
	{Constant: codata2018.ProtonTauMassRatio(), Value: 0.528051, Uncertainty: 3.6e-05},
	{Constant: codata2018.QuantumOfCirculation(), Value: 0.00036369475516, Uncertainty: 1.1e-13},
	{Constant: codata2018.QuantumOfCirculationTimes2(), Value: 0.00072738951032, Uncertainty: 2.2e-13},
	{Constant: codata2018.ReducedComptonWavelength(), Value: 3.8615926796e-13, Uncertainty: 1.2e-22},
	{Constant: codata2018.ReducedMuonComptonWavelength(), Value: 1.867594306e-15, Uncertainty: 4.2e-23},
	{Constant: codata2018.ReducedNeutronComptonWavelength(), Value: 2.1001941552e-16, Uncertainty: 1.2e-25},
	{Constant: codata2018.ReducedPlanckConstant(), Value: 1.054571817e-34, Uncertainty: 0},
	{Constant: codata2018.ReducedPlanckConstantInEVS(), Value: 6.582119569e-16, Uncertainty: 0},
	{Constant: codata2018.ReducedPlanckConstantTimesCInMeVFm(), Value: 197.3269804, Uncertainty: 0},
	{Constant: codata2018.ReducedProtonComptonWavelength(), Value: 2.10308910336e-16, Uncertainty: 6.4e-26},
	{Constant: codata2018.ReducedTauComptonWavelength(), Value: 1.110538e-16, Uncertainty: 7.5e-21},
	{Constant: codata2018.RydbergConstant(), Value: 1.097373156816e+07, Uncertainty: 2.1e-05},
	{Constant: codata2018.RydbergConstantTimesCInHz(), Value: 3.2898419602508e+15, Uncertainty: 6400},
	{Constant: codata2018.RydbergConstantTimesHcInEV(), Value: 13.605693122994, Uncertainty: 2.6e-11},
	{Constant: codata2018.RydbergConstantTimesHcInJ(), Value: 2.1798723611035e-18, Uncertainty: 4.2e-30},
	{Constant: codata2018.SackurTetrodeConstant1K100KPa(), Value: -1.15170753706, Uncertainty: 4.5e-10},
	{Constant: codata2018.SackurTetrodeConstant1K101325KPa(), Value: -1.16487052358, Uncertainty: 4.5e-10},
	{Constant: codata2018.SecondRadiationConstant(), Value: 0.01438776877, Uncertainty: 0},
	{Constant: codata2018.ShieldedHelionGyromagRatio(), Value: 2.037894569e+08, Uncertainty: 2.4},
	{Constant: codata2018.ShieldedHelionGyromagRatioInMHzT(), Value: 32.43409942, Uncertainty: 3.8e-07},
	{Constant: codata2018.ShieldedHelionMagMom(), Value: -1.07455309e-26, Uncertainty: 1.3e-34},
	{Constant: codata2018.ShieldedHelionMagMomToBohrMagnetonRatio(), Value: -0.001158671471, Uncertainty: 1.4e-11},
	{Constant: codata2018.ShieldedHelionMagMomToNuclearMagnetonRatio(), Value: -2.127497719, Uncertainty: 2.5e-08},
	{Constant: codata2018.ShieldedHelionToProtonMagMomRatio(), Value: -0.7617665618, Uncertainty: 8.9e-09},
	{Constant: codata2018.ShieldedHelionToShieldedProtonMagMomRatio(), Value: -0.7617861313, Uncertainty: 3.3e-09},
	{Constant: codata2018.ShieldedProtonGyromagRatio(), Value: 2.675153151e+08, Uncertainty: 2.9},
	{Constant: codata2018.ShieldedProtonGyromagRatioInMHzT(), Value: 42.57638474, Uncertainty: 4.6e-07},
	{Constant: codata2018.ShieldedProtonMagMom(), Value: 1.41057056e-26, Uncertainty: 1.5e-34},
	{Constant: codata2018.ShieldedProtonMagMomToBohrMagnetonRatio(), Value: 0.001520993128, Uncertainty: 1.7e-11},
	{Constant: codata2018.ShieldedProtonMagMomToNuclearMagnetonRatio(), Value: 2.792775599, Uncertainty: 3e-08},
	{Constant: codata2018.ShieldingDifferenceOfDAndPInHD(), Value: 2.02e-08, Uncertainty: 2e-11},
	{Constant: codata2018.ShieldingDifferenceOfTAndPInHT(), Value: 2.414e-08, Uncertainty: 2e-11},
	{Constant: codata2018.SpeedOfLightInVacuum(), Value: 2.99792458e+08, Uncertainty: 0},
	{Constant: codata2018.StandardAccelerationOfGravity(), Value: 9.80665, Uncertainty: 0},
	{Constant: codata2018.StandardAtmosphere(), Value: 101325, Uncertainty: 0},
	{Constant: codata2018.StandardStatePressure(), Value: 100000, Uncertainty: 0},
	{Constant: codata2018.StefanBoltzmannConstant(), Value: 5.670374419e-08, Uncertainty: 0},
	{Constant: codata2018.TauComptonWavelength(), Value: 6.97771e-16, Uncertainty: 4.7e-20},
	{Constant: codata2018.TauElectronMassRatio(), Value: 3477.23, Uncertainty: 0.23},
	{Constant: codata2018.TauEnergyEquivalent(), Value: 1776.86, Uncertainty: 0.12},
	{Constant: codata2018.TauMass(), Value: 3.16754e-27, Uncertainty: 2.1e-31},
	{Constant: codata2018.TauMassEnergyEquivalent(), Value: 2.84684e-10, Uncertainty: 1.9e-14},
	{Constant: codata2018.TauMassInU(), Value: 1.90754, Uncertainty: 0.00013},
	{Constant: codata2018.TauMolarMass(), Value: 0.00190754, Uncertainty: 1.3e-07},
	{Constant: codata2018.TauMuonMassRatio(), Value: 16.817, Uncertainty: 0.0011},
	{Constant: codata2018.TauNeutronMassRatio(), Value: 1.89115, Uncertainty: 0.00013},
	{Constant: codata2018.TauProtonMassRatio(), Value: 1.89376, Uncertainty: 0.00013},
	{Constant: codata2018.ThomsonCrossSection(), Value: 6.6524587321e-29, Uncertainty: 6e-38},
	{Constant: codata2018.TritonElectronMassRatio(), Value: 5496.92153573, Uncertainty: 2.7e-07},
	{Constant: codata2018.TritonGFactor(), Value: 5.957924931, Uncertainty: 1.2e-08},
	{Constant: codata2018.TritonMagMom(), Value: 1.5046095202e-26, Uncertainty: 3e-35},
	{Constant: codata2018.TritonMagMomToBohrMagnetonRatio(), Value: 0.0016223936651, Uncertainty: 3.2e-12},
	{Constant: codata2018.TritonMagMomToNuclearMagnetonRatio(), Value: 2.9789624656, Uncertainty: 5.9e-09},
	{Constant: codata2018.TritonMass(), Value: 5.0073567446e-27, Uncertainty: 1.5e-36},
	{Constant: codata2018.TritonMassEnergyEquivalent(), Value: 4.500387806e-10, Uncertainty: 1.4e-19},
	{Constant: codata2018.TritonMassEnergyEquivalentInMeV(), Value: 2808.92113298, Uncertainty: 8.5e-07},
	{Constant: codata2018.TritonMassInU(), Value: 3.01550071621, Uncertainty: 1.2e-10},
	{Constant: codata2018.TritonMolarMass(), Value: 0.00301550071517, Uncertainty: 9.2e-13},
	{Constant: codata2018.TritonProtonMassRatio(), Value: 2.99371703414, Uncertainty: 1.5e-10},
	{Constant: codata2018.TritonRelativeAtomicMass(), Value: 3.01550071621, Uncertainty: 1.2e-10},
	{Constant: codata2018.TritonToProtonMagMomRatio(), Value: 1.0666399191, Uncertainty: 2.1e-09},
	{Constant: codata2018.UnifiedAtomicMassUnit(), Value: 1.6605390666e-27, Uncertainty: 5e-37},
	{Constant: codata2018.VacuumElectricPermittivity(), Value: 8.8541878128e-12, Uncertainty: 1.3e-21},
	{Constant: codata2018.VacuumMagPermeability(), Value: 1.25663706212e-06, Uncertainty: 1.9e-16},
	{Constant: codata2018.VonKlitzingConstant(), Value: 25812.80745, Uncertainty: 0},
	{Constant: codata2018.WeakMixingAngle(), Value: 0.2229, Uncertainty: 0.0003},
	{Constant: codata2018.WienFrequencyDisplacementLawConstant(), Value: 5.878925757e+10, Uncertainty: 0},
	{Constant: codata2018.WienWavelengthDisplacementLawConstant(), Value: 0.002897771955, Uncertainty: 0},
	{Constant: codata2018.WToZMassRatio(), Value: 0.88153, Uncertainty: 0.00017},
}
