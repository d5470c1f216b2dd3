package codata2010_test

import (
	"github.com/katalvlaran/codata/codata2010"
	"github.com/katalvlaran/codata/internal/codatatest"
)

// published lists the literals of the 2010 adjustment, one row per constant.
var published = []codatatest.Published{
	{Constant: codata2010.AlphaParticleElectronMassRatio(), Value: 7294.2995361, Uncertainty: 2.9e-06},
	{Constant: codata2010.AlphaParticleMass(), Value: 6.64465675e-27, Uncertainty: 2.9e-34},
	{Constant: codata2010.AlphaParticleMassEnergyEquivalent(), Value: 5.97191967e-10, Uncertainty: 2.6e-17},
	{Constant: codata2010.AlphaParticleMassEnergyEquivalentInMeV(), Value: 3727.37924, Uncertainty: 8.2e-05},
	{Constant: codata2010.AlphaParticleMassInU(), Value: 4.001506179125, Uncertainty: 6.2e-11},
	{Constant: codata2010.AlphaParticleMolarMass(), Value: 0.004001506179125, Uncertainty: 6.2e-14},
	{Constant: codata2010.AlphaParticleProtonMassRatio(), Value: 3.97259968933, Uncertainty: 3.6e-10},
	{Constant: codata2010.AngstromStar(), Value: 1.00001495e-10, Uncertainty: 9e-17},
	{Constant: codata2010.AtomicMassConstant(), Value: 1.660538921e-27, Uncertainty: 7.3e-35},
	{Constant: codata2010.AtomicMassConstantEnergyEquivalent(), Value: 1.492417954e-10, Uncertainty: 6.6e-18},
	{Constant: codata2010.AtomicMassConstantEnergyEquivalentInMeV(), Value: 931.494061, Uncertainty: 2.1e-05},
	{Constant: codata2010.AtomicMassUnitElectronVoltRelationship(), Value: 9.31494061e+08, Uncertainty: 21},
	{Constant: codata2010.AtomicMassUnitHartreeRelationship(), Value: 3.4231776845e+07, Uncertainty: 0.024},
	{Constant: codata2010.AtomicMassUnitHertzRelationship(), Value: 2.2523427168e+23, Uncertainty: 1.6e+14},
	{Constant: codata2010.AtomicMassUnitInverseMeterRelationship(), Value: 7.5130066042e+14, Uncertainty: 530000},
	{Constant: codata2010.AtomicMassUnitJouleRelationship(), Value: 1.492417954e-10, Uncertainty: 6.6e-18},
	{Constant: codata2010.AtomicMassUnitKelvinRelationship(), Value: 1.08095408e+13, Uncertainty: 9.8e+06},
	{Constant: codata2010.AtomicMassUnitKilogramRelationship(), Value: 1.660538921e-27, Uncertainty: 7.3e-35},
	{Constant: codata2010.AtomicUnitOf1stHyperpolarizability(), Value: 3.206361449e-53, Uncertainty: 7.1e-61},
	{Constant: codata2010.AtomicUnitOf2ndHyperpolarizability(), Value: 6.23538054e-65, Uncertainty: 2.8e-72},
	{Constant: codata2010.AtomicUnitOfAction(), Value: 1.054571726e-34, Uncertainty: 4.7e-42},
	{Constant: codata2010.AtomicUnitOfCharge(), Value: 1.602176565e-19, Uncertainty: 3.5e-27},
	{Constant: codata2010.AtomicUnitOfChargeDensity(), Value: 1.081202338e+12, Uncertainty: 24000},
	{Constant: codata2010.AtomicUnitOfCurrent(), Value: 0.00662361795, Uncertainty: 1.5e-10},
	{Constant: codata2010.AtomicUnitOfElectricDipoleMom(), Value: 8.47835326e-30, Uncertainty: 1.9e-37},
	{Constant: codata2010.AtomicUnitOfElectricField(), Value: 5.14220652e+11, Uncertainty: 11000},
	{Constant: codata2010.AtomicUnitOfElectricFieldGradient(), Value: 9.717362e+21, Uncertainty: 2.1e+14},
	{Constant: codata2010.AtomicUnitOfElectricPolarizability(), Value: 1.6487772754e-41, Uncertainty: 1.6e-50},
	{Constant: codata2010.AtomicUnitOfElectricPotential(), Value: 27.21138505, Uncertainty: 6e-07},
	{Constant: codata2010.AtomicUnitOfElectricQuadrupoleMom(), Value: 4.486551331e-40, Uncertainty: 9.9e-48},
	{Constant: codata2010.AtomicUnitOfEnergy(), Value: 4.35974434e-18, Uncertainty: 1.9e-25},
	{Constant: codata2010.AtomicUnitOfForce(), Value: 8.23872278e-08, Uncertainty: 3.6e-15},
	{Constant: codata2010.AtomicUnitOfLength(), Value: 5.2917721092e-11, Uncertainty: 1.7e-20},
	{Constant: codata2010.AtomicUnitOfMagDipoleMom(), Value: 1.854801936e-23, Uncertainty: 4.1e-31},
	{Constant: codata2010.AtomicUnitOfMagFluxDensity(), Value: 235051.7464, Uncertainty: 0.0052},
	{Constant: codata2010.AtomicUnitOfMagnetizability(), Value: 7.891036607e-29, Uncertainty: 1.3e-37},
	{Constant: codata2010.AtomicUnitOfMass(), Value: 9.10938291e-31, Uncertainty: 4e-38},
	{Constant: codata2010.AtomicUnitOfMomentum(), Value: 1.99285174e-24, Uncertainty: 8.8e-32},
	{Constant: codata2010.AtomicUnitOfPermittivity(), Value: 1.112650056e-10, Uncertainty: 0},
	{Constant: codata2010.AtomicUnitOfTime(), Value: 2.418884326502e-17, Uncertainty: 1.2e-28},
	{Constant: codata2010.AtomicUnitOfVelocity(), Value: 2.18769126379e+06, Uncertainty: 0.00071},
	{Constant: codata2010.AvogadroConstant(), Value: 6.02214129e+23, Uncertainty: 2.7e+16},
	{Constant: codata2010.BohrMagneton(), Value: 9.27400968e-24, Uncertainty: 2e-31},
	{Constant: codata2010.BohrMagnetonInEVT(), Value: 5.7883818066e-05, Uncertainty: 3.8e-14},
	{Constant: codata2010.BohrMagnetonInHzT(), Value: 1.399624555e+10, Uncertainty: 310},
	{Constant: codata2010.BohrMagnetonInInverseMetersPerTesla(), Value: 46.6864498, Uncertainty: 1e-06},
	{Constant: codata2010.BohrMagnetonInKT(), Value: 0.67171388, Uncertainty: 6.1e-07},
	{Constant: codata2010.BohrRadius(), Value: 5.2917721092e-11, Uncertainty: 1.7e-20},
	{Constant: codata2010.BoltzmannConstant(), Value: 1.3806488e-23, Uncertainty: 1.3e-29},
	{Constant: codata2010.BoltzmannConstantInEVK(), Value: 8.6173324e-05, Uncertainty: 7.8e-11},
	{Constant: codata2010.BoltzmannConstantInHzK(), Value: 2.0836618e+10, Uncertainty: 19000},
	{Constant: codata2010.BoltzmannConstantInInverseMetersPerKelvin(), Value: 69.503476, Uncertainty: 6.3e-05},
	{Constant: codata2010.CharacteristicImpedanceOfVacuum(), Value: 376.730313461, Uncertainty: 0},
	{Constant: codata2010.ClassicalElectronRadius(), Value: 2.8179403267e-15, Uncertainty: 2.7e-24},
	{Constant: codata2010.ComptonWavelength(), Value: 2.4263102389e-12, Uncertainty: 1.6e-21},
	{Constant: codata2010.ComptonWavelengthOver2Pi(), Value: 3.86159268e-13, Uncertainty: 2.5e-22},
	{Constant: codata2010.ConductanceQuantum(), Value: 7.7480917346e-05, Uncertainty: 2.5e-14},
	{Constant: codata2010.ConventionalValueOfJosephsonConstant(), Value: 4.835979e+14, Uncertainty: 0},
	{Constant: codata2010.ConventionalValueOfVonKlitzingConstant(), Value: 25812.807, Uncertainty: 0},
	{Constant: codata2010.CuXUnit(), Value: 1.00207697e-13, Uncertainty: 2.8e-20},
	{Constant: codata2010.DeuteronElectronMagMomRatio(), Value: -0.0004664345537, Uncertainty: 3.9e-12},
	{Constant: codata2010.DeuteronElectronMassRatio(), Value: 3670.4829652, Uncertainty: 1.5e-06},
	{Constant: codata2010.DeuteronGFactor(), Value: 0.8574382308, Uncertainty: 7.2e-09},
	{Constant: codata2010.DeuteronMagMom(), Value: 4.33073489e-27, Uncertainty: 1e-34},
	{Constant: codata2010.DeuteronMagMomToBohrMagnetonRatio(), Value: 0.0004669754556, Uncertainty: 3.9e-12},
	{Constant: codata2010.DeuteronMagMomToNuclearMagnetonRatio(), Value: 0.8574382308, Uncertainty: 7.2e-09},
	{Constant: codata2010.DeuteronMass(), Value: 3.34358348e-27, Uncertainty: 1.5e-34},
	{Constant: codata2010.DeuteronMassEnergyEquivalent(), Value: 3.00506297e-10, Uncertainty: 1.3e-17},
	{Constant: codata2010.DeuteronMassEnergyEquivalentInMeV(), Value: 1875.612859, Uncertainty: 4.1e-05},
	{Constant: codata2010.DeuteronMassInU(), Value: 2.013553212712, Uncertainty: 7.7e-11},
	{Constant: codata2010.DeuteronMolarMass(), Value: 0.002013553212712, Uncertainty: 7.7e-14},
	{Constant: codata2010.DeuteronNeutronMagMomRatio(), Value: -0.44820652, Uncertainty: 1.1e-07},
	{Constant: codata2010.DeuteronProtonMagMomRatio(), Value: 0.307012207, Uncertainty: 2.4e-09},
	{Constant: codata2010.DeuteronProtonMassRatio(), Value: 1.99900750097, Uncertainty: 1.8e-10},
	{Constant: codata2010.DeuteronRmsChargeRadius(), Value: 2.1424e-15, Uncertainty: 2.1e-18},
	{Constant: codata2010.ElectricConstant(), Value: 8.854187817e-12, Uncertainty: 0},
	{Constant: codata2010.ElectronChargeToMassQuotient(), Value: -1.758820088e+11, Uncertainty: 3900},
	{Constant: codata2010.ElectronDeuteronMagMomRatio(), Value: -2143.923498, Uncertainty: 1.8e-05},
	{Constant: codata2010.ElectronDeuteronMassRatio(), Value: 0.00027244371095, Uncertainty: 1.1e-13},
	{Constant: codata2010.ElectronGFactor(), Value: -2.00231930436153, Uncertainty: 5.3e-13},
	{Constant: codata2010.ElectronGyromagRatio(), Value: 1.760859708e+11, Uncertainty: 3900},
	{Constant: codata2010.ElectronGyromagRatioOver2Pi(), Value: 28024.95266, Uncertainty: 0.00062},
	{Constant: codata2010.ElectronHelionMassRatio(), Value: 0.00018195430761, Uncertainty: 1.7e-13},
	{Constant: codata2010.ElectronMagMom(), Value: -9.2847643e-24, Uncertainty: 2.1e-31},
	{Constant: codata2010.ElectronMagMomAnomaly(), Value: 0.00115965218076, Uncertainty: 2.7e-13},
	{Constant: codata2010.ElectronMagMomToBohrMagnetonRatio(), Value: -1.00115965218076, Uncertainty: 2.7e-13},
	{Constant: codata2010.ElectronMagMomToNuclearMagnetonRatio(), Value: -1838.2819709, Uncertainty: 1.5e-06},
	{Constant: codata2010.ElectronMass(), Value: 9.10938291e-31, Uncertainty: 4e-38},
	{Constant: codata2010.ElectronMassEnergyEquivalent(), Value: 8.18710506e-14, Uncertainty: 3.6e-21},
	{Constant: codata2010.ElectronMassEnergyEquivalentInMeV(), Value: 0.510998928, Uncertainty: 1.1e-08},
	{Constant: codata2010.ElectronMassInU(), Value: 0.00054857990946, Uncertainty: 2.2e-13},
	{Constant: codata2010.ElectronMolarMass(), Value: 5.4857990946e-07, Uncertainty: 2.2e-16},
	{Constant: codata2010.ElectronMuonMagMomRatio(), Value: 206.7669896, Uncertainty: 5.2e-06},
	{Constant: codata2010.ElectronMuonMassRatio(), Value: 0.00483633166, Uncertainty: 1.2e-10},
	{Constant: codata2010.ElectronNeutronMagMomRatio(), Value: 960.9205, Uncertainty: 0.00023},
	{Constant: codata2010.ElectronNeutronMassRatio(), Value: 0.00054386734461, Uncertainty: 3.2e-13},
	{Constant: codata2010.ElectronProtonMagMomRatio(), Value: -658.2106848, Uncertainty: 5.4e-06},
	{Constant: codata2010.ElectronProtonMassRatio(), Value: 0.00054461702178, Uncertainty: 2.2e-13},
	{Constant: codata2010.ElectronTauMassRatio(), Value: 0.000287592, Uncertainty: 2.6e-08},
	{Constant: codata2010.ElectronToAlphaParticleMassRatio(), Value: 0.000137093355578, Uncertainty: 5.5e-14},
	{Constant: codata2010.ElectronToShieldedHelionMagMomRatio(), Value: 864.058257, Uncertainty: 1e-05},
	{Constant: codata2010.ElectronToShieldedProtonMagMomRatio(), Value: -658.2275971, Uncertainty: 7.2e-06},
	{Constant: codata2010.ElectronTritonMassRatio(), Value: 0.00018192000653, Uncertainty: 1.7e-13},
	{Constant: codata2010.ElectronVolt(), Value: 1.602176565e-19, Uncertainty: 3.5e-27},
	{Constant: codata2010.ElectronVoltAtomicMassUnitRelationship(), Value: 1.07354415e-09, Uncertainty: 2.4e-17},
	{Constant: codata2010.ElectronVoltHartreeRelationship(), Value: 0.03674932379, Uncertainty: 8.1e-10},
	{Constant: codata2010.ElectronVoltHertzRelationship(), Value: 2.417989348e+14, Uncertainty: 5.3e+06},
	{Constant: codata2010.ElectronVoltInverseMeterRelationship(), Value: 806554.429, Uncertainty: 0.018},
	{Constant: codata2010.ElectronVoltJouleRelationship(), Value: 1.602176565e-19, Uncertainty: 3.5e-27},
	{Constant: codata2010.ElectronVoltKelvinRelationship(), Value: 11604.519, Uncertainty: 0.011},
	{Constant: codata2010.ElectronVoltKilogramRelationship(), Value: 1.782661845e-36, Uncertainty: 3.9e-44},
	{Constant: codata2010.ElementaryCharge(), Value: 1.602176565e-19, Uncertainty: 3.5e-27},
	{Constant: codata2010.ElementaryChargeOverH(), Value: 2.417989348e+14, Uncertainty: 5.3e+06},
	{Constant: codata2010.FaradayConstant(), Value: 96485.3365, Uncertainty: 0.0021},
	{Constant: codata2010.FaradayConstantForConventionalElectricCurrent(), Value: 96485.3321, Uncertainty: 0.0043},
	{Constant: codata2010.FermiCouplingConstant(), Value: 1.166364e-05, Uncertainty: 5e-11},
	{Constant: codata2010.FineStructureConstant(), Value: 0.0072973525698, Uncertainty: 2.4e-12},
	{Constant: codata2010.FirstRadiationConstant(), Value: 3.74177153e-16, Uncertainty: 1.7e-23},
	{Constant: codata2010.FirstRadiationConstantForSpectralRadiance(), Value: 1.191042869e-16, Uncertainty: 5.3e-24},
	{Constant: codata2010.HartreeAtomicMassUnitRelationship(), Value: 2.9212623246e-08, Uncertainty: 2.1e-17},
	{Constant: codata2010.HartreeElectronVoltRelationship(), Value: 27.21138505, Uncertainty: 6e-07},
	{Constant: codata2010.HartreeEnergy(), Value: 4.35974434e-18, Uncertainty: 1.9e-25},
	{Constant: codata2010.HartreeEnergyInEV(), Value: 27.21138505, Uncertainty: 6e-07},
	{Constant: codata2010.HartreeHertzRelationship(), Value: 6.579683920729e+15, Uncertainty: 33000},
	{Constant: codata2010.HartreeInverseMeterRelationship(), Value: 2.194746313708e+07, Uncertainty: 0.00011},
	{Constant: codata2010.HartreeJouleRelationship(), Value: 4.35974434e-18, Uncertainty: 1.9e-25},
	{Constant: codata2010.HartreeKelvinRelationship(), Value: 315775.04, Uncertainty: 0.29},
	{Constant: codata2010.HartreeKilogramRelationship(), Value: 4.85086979e-35, Uncertainty: 2.1e-42},
	{Constant: codata2010.HelionElectronMassRatio(), Value: 5495.8852754, Uncertainty: 5e-06},
	{Constant: codata2010.HelionGFactor(), Value: -4.255250613, Uncertainty: 5e-08},
	{Constant: codata2010.HelionMagMom(), Value: -1.074617486e-26, Uncertainty: 2.7e-34},
	{Constant: codata2010.HelionMagMomToBohrMagnetonRatio(), Value: -0.001158740958, Uncertainty: 1.4e-11},
	{Constant: codata2010.HelionMagMomToNuclearMagnetonRatio(), Value: -2.127625306, Uncertainty: 2.5e-08},
	{Constant: codata2010.HelionMass(), Value: 5.00641234e-27, Uncertainty: 2.2e-34},
	{Constant: codata2010.HelionMassEnergyEquivalent(), Value: 4.49953902e-10, Uncertainty: 2e-17},
	{Constant: codata2010.HelionMassEnergyEquivalentInMeV(), Value: 2808.391482, Uncertainty: 6.2e-05},
	{Constant: codata2010.HelionMassInU(), Value: 3.0149322468, Uncertainty: 2.5e-09},
	{Constant: codata2010.HelionMolarMass(), Value: 0.0030149322468, Uncertainty: 2.5e-12},
	{Constant: codata2010.HelionProtonMassRatio(), Value: 2.9931526707, Uncertainty: 2.5e-09},
	{Constant: codata2010.HertzAtomicMassUnitRelationship(), Value: 4.4398216689e-24, Uncertainty: 3.1e-33},
	{Constant: codata2010.HertzElectronVoltRelationship(), Value: 4.135667516e-15, Uncertainty: 9.1e-23},
	{Constant: codata2010.HertzHartreeRelationship(), Value: 1.5198298460045e-16, Uncertainty: 7.6e-28},
	{Constant: codata2010.HertzInverseMeterRelationship(), Value: 3.335640951e-09, Uncertainty: 0},
	{Constant: codata2010.HertzJouleRelationship(), Value: 6.62606957e-34, Uncertainty: 2.9e-41},
	{Constant: codata2010.HertzKelvinRelationship(), Value: 4.7992434e-11, Uncertainty: 4.4e-17},
	{Constant: codata2010.HertzKilogramRelationship(), Value: 7.37249668e-51, Uncertainty: 3.3e-58},
	{Constant: codata2010.InverseFineStructureConstant(), Value: 137.035999074, Uncertainty: 4.4e-08},
	{Constant: codata2010.InverseMeterAtomicMassUnitRelationship(), Value: 1.3310250512e-15, Uncertainty: 9.4e-25},
	{Constant: codata2010.InverseMeterElectronVoltRelationship(), Value: 1.23984193e-06, Uncertainty: 2.7e-14},
	{Constant: codata2010.InverseMeterHartreeRelationship(), Value: 4.556335252755e-08, Uncertainty: 2.3e-19},
	{Constant: codata2010.InverseMeterHertzRelationship(), Value: 2.99792458e+08, Uncertainty: 0},
	{Constant: codata2010.InverseMeterJouleRelationship(), Value: 1.986445684e-25, Uncertainty: 8.8e-33},
	{Constant: codata2010.InverseMeterKelvinRelationship(), Value: 0.01438777, Uncertainty: 1.3e-08},
	{Constant: codata2010.InverseMeterKilogramRelationship(), Value: 2.210218902e-42, Uncertainty: 9.8e-50},
	{Constant: codata2010.InverseOfConductanceQuantum(), Value: 12906.4037217, Uncertainty: 4.2e-06},
	{Constant: codata2010.JosephsonConstant(), Value: 4.8359787e+14, Uncertainty: 1.1e+07},
	{Constant: codata2010.JouleAtomicMassUnitRelationship(), Value: 6.70053585e+09, Uncertainty: 300},
	{Constant: codata2010.JouleElectronVoltRelationship(), Value: 6.24150934e+18, Uncertainty: 1.4e+11},
	{Constant: codata2010.JouleHartreeRelationship(), Value: 2.29371248e+17, Uncertainty: 1e+10},
	{Constant: codata2010.JouleHertzRelationship(), Value: 1.509190311e+33, Uncertainty: 6.7e+25},
	{Constant: codata2010.JouleInverseMeterRelationship(), Value: 5.03411701e+24, Uncertainty: 2.2e+17},
	{Constant: codata2010.JouleKelvinRelationship(), Value: 7.2429716e+22, Uncertainty: 6.6e+16},
	{Constant: codata2010.JouleKilogramRelationship(), Value: 1.112650056e-17, Uncertainty: 0},
	{Constant: codata2010.KelvinAtomicMassUnitRelationship(), Value: 9.2510868e-14, Uncertainty: 8.4e-20},
	{Constant: codata2010.KelvinElectronVoltRelationship(), Value: 8.6173324e-05, Uncertainty: 7.8e-11},
	{Constant: codata2010.KelvinHartreeRelationship(), Value: 3.1668114e-06, Uncertainty: 2.9e-12},
	{Constant: codata2010.KelvinHertzRelationship(), Value: 2.0836618e+10, Uncertainty: 19000},
	{Constant: codata2010.KelvinInverseMeterRelationship(), Value: 69.503476, Uncertainty: 6.3e-05},
	{Constant: codata2010.KelvinJouleRelationship(), Value: 1.3806488e-23, Uncertainty: 1.3e-29},
	{Constant: codata2010.KelvinKilogramRelationship(), Value: 1.536179e-40, Uncertainty: 1.4e-46},
	{Constant: codata2010.KilogramAtomicMassUnitRelationship(), Value: 6.02214129e+26, Uncertainty: 2.7e+19},
	{Constant: codata2010.KilogramElectronVoltRelationship(), Value: 5.60958885e+35, Uncertainty: 1.2e+28},
	{Constant: codata2010.KilogramHartreeRelationship(), Value: 2.061485968e+34, Uncertainty: 9.1e+26},
	{Constant: codata2010.KilogramHertzRelationship(), Value: 1.356392608e+50, Uncertainty: 6e+42},
	{Constant: codata2010.KilogramInverseMeterRelationship(), Value: 4.52443873e+41, Uncertainty: 2e+34},
	{Constant: codata2010.KilogramJouleRelationship(), Value: 8.987551787e+16, Uncertainty: 0},
	{Constant: codata2010.KilogramKelvinRelationship(), Value: 6.5096582e+39, Uncertainty: 5.9e+33},
	{Constant: codata2010.LatticeParameterOfSilicon(), Value: 5.431020504e-10, Uncertainty: 8.9e-18},
	{Constant: codata2010.LoschmidtConstant27315K100KPa(), Value: 2.6516462e+25, Uncertainty: 2.4e+19},
	{Constant: codata2010.LoschmidtConstant27315K101325KPa(), Value: 2.6867805e+25, Uncertainty: 2.4e+19},
	{Constant: codata2010.MagConstant(), Value: 1.2566370614e-06, Uncertainty: 0},
	{Constant: codata2010.MagFluxQuantum(), Value: 2.067833758e-15, Uncertainty: 4.6e-23},
	{Constant: codata2010.MolarGasConstant(), Value: 8.3144621, Uncertainty: 7.5e-06},
	{Constant: codata2010.MolarMassConstant(), Value: 0.001, Uncertainty: 0},
	{Constant: codata2010.MolarMassOfCarbon12(), Value: 0.012, Uncertainty: 0},
	{Constant: codata2010.MolarPlanckConstant(), Value: 3.9903127176e-10, Uncertainty: 2.8e-19},
	{Constant: codata2010.MolarPlanckConstantTimesC(), Value: 0.119626565779, Uncertainty: 8.4e-11},
	{Constant: codata2010.MolarVolumeOfIdealGas27315K100KPa(), Value: 0.022710953, Uncertainty: 2.1e-08},
	{Constant: codata2010.MolarVolumeOfIdealGas27315K101325KPa(), Value: 0.022413968, Uncertainty: 2e-08},
	{Constant: codata2010.MolarVolumeOfSilicon(), Value: 1.205883301e-05, Uncertainty: 8e-13},
	{Constant: codata2010.MoXUnit(), Value: 1.00209952e-13, Uncertainty: 5.3e-20},
	{Constant: codata2010.MuonComptonWavelength(), Value: 1.173444103e-14, Uncertainty: 3e-22},
	{Constant: codata2010.MuonComptonWavelengthOver2Pi(), Value: 1.867594294e-15, Uncertainty: 4.7e-23},
	{Constant: codata2010.MuonElectronMassRatio(), Value: 206.7682843, Uncertainty: 5.2e-06},
	{Constant: codata2010.MuonGFactor(), Value: -2.0023318418, Uncertainty: 1.3e-09},
	{Constant: codata2010.MuonMagMom(), Value: -4.49044807e-26, Uncertainty: 1.5e-33},
	{Constant: codata2010.MuonMagMomAnomaly(), Value: 0.00116592091, Uncertainty: 6.3e-10},
	{Constant: codata2010.MuonMagMomToBohrMagnetonRatio(), Value: -0.00484197044, Uncertainty: 1.2e-10},
	{Constant: codata2010.MuonMagMomToNuclearMagnetonRatio(), Value: -8.89059697, Uncertainty: 2.2e-07},
	{Constant: codata2010.MuonMass(), Value: 1.883531475e-28, Uncertainty: 9.6e-36},
	{Constant: codata2010.MuonMassEnergyEquivalent(), Value: 1.692833667e-11, Uncertainty: 8.6e-19},
	{Constant: codata2010.MuonMassEnergyEquivalentInMeV(), Value: 105.6583715, Uncertainty: 3.5e-06},
	{Constant: codata2010.MuonMassInU(), Value: 0.1134289267, Uncertainty: 2.9e-09},
	{Constant: codata2010.MuonMolarMass(), Value: 0.0001134289267, Uncertainty: 2.9e-12},
	{Constant: codata2010.MuonNeutronMassRatio(), Value: 0.1124545177, Uncertainty: 2.8e-09},
	{Constant: codata2010.MuonProtonMagMomRatio(), Value: -3.183345107, Uncertainty: 8.4e-08},
	{Constant: codata2010.MuonProtonMassRatio(), Value: 0.1126095272, Uncertainty: 2.8e-09},
	{Constant: codata2010.MuonTauMassRatio(), Value: 0.0594649, Uncertainty: 5.4e-06},
	{Constant: codata2010.NaturalUnitOfAction(), Value: 1.054571726e-34, Uncertainty: 4.7e-42},
	{Constant: codata2010.NaturalUnitOfActionInEVS(), Value: 6.58211928e-16, Uncertainty: 1.5e-23},
	{Constant: codata2010.NaturalUnitOfEnergy(), Value: 8.18710506e-14, Uncertainty: 3.6e-21},
	{Constant: codata2010.NaturalUnitOfEnergyInMeV(), Value: 0.510998928, Uncertainty: 1.1e-08},
	{Constant: codata2010.NaturalUnitOfLength(), Value: 3.86159268e-13, Uncertainty: 2.5e-22},
	{Constant: codata2010.NaturalUnitOfMass(), Value: 9.10938291e-31, Uncertainty: 4e-38},
	{Constant: codata2010.NaturalUnitOfMomentum(), Value: 2.73092429e-22, Uncertainty: 1.2e-29},
	{Constant: codata2010.NaturalUnitOfMomentumInMeVC(), Value: 0.510998928, Uncertainty: 1.1e-08},
	{Constant: codata2010.NaturalUnitOfTime(), Value: 1.28808866833e-21, Uncertainty: 8.3e-31},
	{Constant: codata2010.NaturalUnitOfVelocity(), Value: 2.99792458e+08, Uncertainty: 0},
	{Constant: codata2010.NeutronComptonWavelength(), Value: 1.3195909068e-15, Uncertainty: 1.1e-24},
	{Constant: codata2010.NeutronComptonWavelengthOver2Pi(), Value: 2.1001941568e-16, Uncertainty: 1.7e-25},
	{Constant: codata2010.NeutronElectronMagMomRatio(), Value: 0.00104066882, Uncertainty: 2.5e-10},
	{Constant: codata2010.NeutronElectronMassRatio(), Value: 1838.6836605, Uncertainty: 1.1e-06},
	{Constant: codata2010.NeutronGFactor(), Value: -3.82608545, Uncertainty: 9e-07},
	{Constant: codata2010.NeutronGyromagRatio(), Value: 1.83247179e+08, Uncertainty: 43},
	{Constant: codata2010.NeutronGyromagRatioOver2Pi(), Value: 29.1646943, Uncertainty: 6.9e-06},
	{Constant: codata2010.NeutronMagMom(), Value: -9.6623647e-27, Uncertainty: 2.3e-33},
	{Constant: codata2010.NeutronMagMomToBohrMagnetonRatio(), Value: -0.00104187563, Uncertainty: 2.5e-10},
	{Constant: codata2010.NeutronMagMomToNuclearMagnetonRatio(), Value: -1.91304272, Uncertainty: 4.5e-07},
	{Constant: codata2010.NeutronMass(), Value: 1.674927351e-27, Uncertainty: 7.4e-35},
	{Constant: codata2010.NeutronMassEnergyEquivalent(), Value: 1.505349631e-10, Uncertainty: 6.6e-18},
	{Constant: codata2010.NeutronMassEnergyEquivalentInMeV(), Value: 939.565379, Uncertainty: 2.1e-05},
	{Constant: codata2010.NeutronMassInU(), Value: 1.008664916, Uncertainty: 4.3e-10},
	{Constant: codata2010.NeutronMolarMass(), Value: 0.001008664916, Uncertainty: 4.3e-13},
	{Constant: codata2010.NeutronMuonMassRatio(), Value: 8.892484, Uncertainty: 2.2e-07},
	{Constant: codata2010.NeutronProtonMagMomRatio(), Value: -0.68497934, Uncertainty: 1.6e-07},
	{Constant: codata2010.NeutronProtonMassDifference(), Value: 2.30557392e-30, Uncertainty: 7.6e-37},
	{Constant: codata2010.NeutronProtonMassDifferenceEnergyEquivalent(), Value: 2.0721465e-13, Uncertainty: 6.8e-19},
	{Constant: codata2010.NeutronProtonMassDifferenceEnergyEquivalentInMeV(), Value: 1.29333217, Uncertainty: 4.2e-07},
	{Constant: codata2010.NeutronProtonMassDifferenceInU(), Value: 0.00138844919, Uncertainty: 4.5e-10},
	{Constant: codata2010.NeutronProtonMassRatio(), Value: 1.00137841917, Uncertainty: 4.5e-10},
	{Constant: codata2010.NeutronTauMassRatio(), Value: 0.52879, Uncertainty: 4.8e-05},
	{Constant: codata2010.NeutronToShieldedProtonMagMomRatio(), Value: -0.68499694, Uncertainty: 1.6e-07},
	{Constant: codata2010.NewtonianConstantOfGravitation(), Value: 6.67384e-11, Uncertainty: 8e-15},
	{Constant: codata2010.NewtonianConstantOfGravitationOverHBarC(), Value: 6.70837e-39, Uncertainty: 8e-43},
	{Constant: codata2010.NuclearMagneton(), Value: 5.05078353e-27, Uncertainty: 1.1e-34},
	{Constant: codata2010.NuclearMagnetonInEVT(), Value: 3.1524512605e-08, Uncertainty: 2.2e-17},
	{Constant: codata2010.NuclearMagnetonInInverseMetersPerTesla(), Value: 0.02542623527, Uncertainty: 5.6e-10},
	{Constant: codata2010.NuclearMagnetonInKT(), Value: 0.00036582682, Uncertainty: 3.3e-10},
	{Constant: codata2010.NuclearMagnetonInMHzT(), Value: 7.62259357, Uncertainty: 1.7e-07},
	{Constant: codata2010.PlanckConstant(), Value: 6.62606957e-34, Uncertainty: 2.9e-41},
	{Constant: codata2010.PlanckConstantInEVS(), Value: 4.135667516e-15, Uncertainty: 9.1e-23},
	{Constant: codata2010.PlanckConstantOver2Pi(), Value: 1.054571726e-34, Uncertainty: 4.7e-42},
	{Constant: codata2010.PlanckConstantOver2PiInEVS(), Value: 6.58211928e-16, Uncertainty: 1.5e-23},
	{Constant: codata2010.PlanckConstantOver2PiTimesCInMeVFm(), Value: 197.3269718, Uncertainty: 4.4e-06},
	{Constant: codata2010.PlanckLength(), Value: 1.616199e-35, Uncertainty: 9.7e-40},
	{Constant: codata2010.PlanckMass(), Value: 2.17651e-08, Uncertainty: 1.3e-12},
	{Constant: codata2010.PlanckMassEnergyEquivalentInGeV(), Value: 1.220932e+19, Uncertainty: 7.3e+14},
	{Constant: codata2010.PlanckTemperature(), Value: 1.416833e+32, Uncertainty: 8.5e+27},
	{Constant: codata2010.PlanckTime(), Value: 5.39106e-44, Uncertainty: 3.2e-48},
	{Constant: codata2010.ProtonChargeToMassQuotient(), Value: 9.57883358e+07, Uncertainty: 2.1},
	{Constant: codata2010.ProtonComptonWavelength(), Value: 1.32140985623e-15, Uncertainty: 9.4e-25},
	{Constant: codata2010.ProtonComptonWavelengthOver2Pi(), Value: 2.1030891047e-16, Uncertainty: 1.5e-25},
	{Constant: codata2010.ProtonElectronMassRatio(), Value: 1836.15267245, Uncertainty: 7.5e-07},
	{Constant: codata2010.ProtonGFactor(), Value: 5.585694713, Uncertainty: 4.6e-08},
	{Constant: codata2010.ProtonGyromagRatio(), Value: 2.675222005e+08, Uncertainty: 6.3},
	{Constant: codata2010.ProtonGyromagRatioOver2Pi(), Value: 42.5774806, Uncertainty: 1e-06},
	{Constant: codata2010.ProtonMagMom(), Value: 1.410606743e-26, Uncertainty: 3.3e-34},
	{Constant: codata2010.ProtonMagMomToBohrMagnetonRatio(), Value: 0.00152103221, Uncertainty: 1.2e-11},
	{Constant: codata2010.ProtonMagMomToNuclearMagnetonRatio(), Value: 2.792847356, Uncertainty: 2.3e-08},
	{Constant: codata2010.ProtonMagShieldingCorrection(), Value: 2.5694e-05, Uncertainty: 1.4e-08},
	{Constant: codata2010.ProtonMass(), Value: 1.672621777e-27, Uncertainty: 7.4e-35},
	{Constant: codata2010.ProtonMassEnergyEquivalent(), Value: 1.503277484e-10, Uncertainty: 6.6e-18},
	{Constant: codata2010.ProtonMassEnergyEquivalentInMeV(), Value: 938.272046, Uncertainty: 2.1e-05},
	{Constant: codata2010.ProtonMassInU(), Value: 1.007276466812, Uncertainty: 9e-11},
	{Constant: codata2010.ProtonMolarMass(), Value: 0.001007276466812, Uncertainty: 9e-14},
	{Constant: codata2010.ProtonMuonMassRatio(), Value: 8.88024331, Uncertainty: 2.2e-07},
	{Constant: codata2010.ProtonNeutronMagMomRatio(), Value: -1.45989806, Uncertainty: 3.4e-07},
	{Constant: codata2010.ProtonNeutronMassRatio(), Value: 0.99862347826, Uncertainty: 4.5e-10},
	{Constant: codata2010.ProtonRmsChargeRadius(), Value: 8.775e-16, Uncertainty: 5.1e-18},
	{Constant: codata2010.ProtonTauMassRatio(), Value: 0.528063, Uncertainty: 4.8e-05},
	{Constant: codata2010.QuantumOfCirculation(), Value: 0.0003636947552, Uncertainty: 2.4e-13},
	{Constant: codata2010.QuantumOfCirculationTimes2(), Value: 0.0007273895104, Uncertainty: 4.7e-13},
	{Constant: codata2010.RydbergConstant(), Value: 1.0973731568539e+07, Uncertainty: 5.5e-05},
	{Constant: codata2010.RydbergConstantTimesCInHz(), Value: 3.289841960364e+15, Uncertainty: 17000},
	{Constant: codata2010.RydbergConstantTimesHcInEV(), Value: 13.60569253, Uncertainty: 3e-07},
	{Constant: codata2010.RydbergConstantTimesHcInJ(), Value: 2.179872171e-18, Uncertainty: 9.6e-26},
	{Constant: codata2010.SackurTetrodeConstant1K100KPa(), Value: -1.1517078, Uncertainty: 2.3e-06},
	{Constant: codata2010.SackurTetrodeConstant1K101325KPa(), Value: -1.1648708, Uncertainty: 2.3e-06},
	{Constant: codata2010.SecondRadiationConstant(), Value: 0.01438777, Uncertainty: 1.3e-08},
	{Constant: codata2010.ShieldedHelionGyromagRatio(), Value: 2.037894659e+08, Uncertainty: 5.1},
	{Constant: codata2010.ShieldedHelionGyromagRatioOver2Pi(), Value: 32.43410084, Uncertainty: 8.1e-07},
	{Constant: codata2010.ShieldedHelionMagMom(), Value: -1.074553044e-26, Uncertainty: 2.7e-34},
	{Constant: codata2010.ShieldedHelionMagMomToBohrMagnetonRatio(), Value: -0.001158671471, Uncertainty: 1.4e-11},
	{Constant: codata2010.ShieldedHelionMagMomToNuclearMagnetonRatio(), Value: -2.127497718, Uncertainty: 2.5e-08},
	{Constant: codata2010.ShieldedHelionToProtonMagMomRatio(), Value: -0.761766558, Uncertainty: 1.1e-08},
	{Constant: codata2010.ShieldedHelionToShieldedProtonMagMomRatio(), Value: -0.7617861313, Uncertainty: 3.3e-09},
	{Constant: codata2010.ShieldedProtonGyromagRatio(), Value: 2.675153268e+08, Uncertainty: 6.6},
	{Constant: codata2010.ShieldedProtonGyromagRatioOver2Pi(), Value: 42.5763866, Uncertainty: 1e-06},
	{Constant: codata2010.ShieldedProtonMagMom(), Value: 1.410570499e-26, Uncertainty: 3.5e-34},
	{Constant: codata2010.ShieldedProtonMagMomToBohrMagnetonRatio(), Value: 0.001520993128, Uncertainty: 1.7e-11},
	{Constant: codata2010.ShieldedProtonMagMomToNuclearMagnetonRatio(), Value: 2.792775598, Uncertainty: 3e-08},
	{Constant: codata2010.SpeedOfLightInVacuum(), Value: 2.99792458e+08, Uncertainty: 0},
	{Constant: codata2010.StandardAccelerationOfGravity(), Value: 9.80665, Uncertainty: 0},
	{Constant: codata2010.StandardAtmosphere(), Value: 101325, Uncertainty: 0},
	{Constant: codata2010.StandardStatePressure(), Value: 100000, Uncertainty: 0},
	{Constant: codata2010.StefanBoltzmannConstant(), Value: 5.670373e-08, Uncertainty: 2.1e-13},
	{Constant: codata2010.TauComptonWavelength(), Value: 6.97787e-16, Uncertainty: 6.3e-20},
	{Constant: codata2010.TauComptonWavelengthOver2Pi(), Value: 1.11056e-16, Uncertainty: 1e-20},
	{Constant: codata2010.TauElectronMassRatio(), Value: 3477.15, Uncertainty: 0.31},
	{Constant: codata2010.TauMass(), Value: 3.16747e-27, Uncertainty: 2.9e-31},
	{Constant: codata2010.TauMassEnergyEquivalent(), Value: 2.84678e-10, Uncertainty: 2.6e-14},
	{Constant: codata2010.TauMassEnergyEquivalentInMeV(), Value: 1776.82, Uncertainty: 0.16},
	{Constant: codata2010.TauMassInU(), Value: 1.90749, Uncertainty: 0.00017},
	{Constant: codata2010.TauMolarMass(), Value: 0.00190749, Uncertainty: 1.7e-07},
	{Constant: codata2010.TauMuonMassRatio(), Value: 16.8167, Uncertainty: 0.0015},
	{Constant: codata2010.TauNeutronMassRatio(), Value: 1.89111, Uncertainty: 0.00017},
	{Constant: codata2010.TauProtonMassRatio(), Value: 1.89372, Uncertainty: 0.00017},
	{Constant: codata2010.ThomsonCrossSection(), Value: 6.652458734e-29, Uncertainty: 1.3e-37},
	{Constant: codata2010.TritonElectronMagMomRatio(), Value: -0.001620514423, Uncertainty: 2.1e-11},
	{Constant: codata2010.TritonElectronMassRatio(), Value: 5496.9215267, Uncertainty: 5e-06},
	{Constant: codata2010.TritonGFactor(), Value: 5.957924896, Uncertainty: 7.6e-08},
	{Constant: codata2010.TritonMagMom(), Value: 1.504609447e-26, Uncertainty: 3.8e-34},
	{Constant: codata2010.TritonMagMomToBohrMagnetonRatio(), Value: 0.001622393657, Uncertainty: 2.1e-11},
	{Constant: codata2010.TritonMagMomToNuclearMagnetonRatio(), Value: 2.978962448, Uncertainty: 3.8e-08},
	{Constant: codata2010.TritonMass(), Value: 5.0073563e-27, Uncertainty: 2.2e-34},
	{Constant: codata2010.TritonMassEnergyEquivalent(), Value: 4.50038741e-10, Uncertainty: 2e-17},
	{Constant: codata2010.TritonMassEnergyEquivalentInMeV(), Value: 2808.921005, Uncertainty: 6.2e-05},
	{Constant: codata2010.TritonMassInU(), Value: 3.0155007134, Uncertainty: 2.5e-09},
	{Constant: codata2010.TritonMolarMass(), Value: 0.0030155007134, Uncertainty: 2.5e-12},
	{Constant: codata2010.TritonNeutronMagMomRatio(), Value: -1.55718553, Uncertainty: 3.7e-07},
	{Constant: codata2010.TritonProtonMagMomRatio(), Value: 1.066639908, Uncertainty: 1e-08},
	{Constant: codata2010.TritonProtonMassRatio(), Value: 2.9937170308, Uncertainty: 2.5e-09},
	{Constant: codata2010.UnifiedAtomicMassUnit(), Value: 1.660538921e-27, Uncertainty: 7.3e-35},
	{Constant: codata2010.VonKlitzingConstant(), Value: 25812.8074434, Uncertainty: 8.4e-06},
	{Constant: codata2010.WeakMixingAngle(), Value: 0.2223, Uncertainty: 0.0021},
	{Constant: codata2010.WienFrequencyDisplacementLawConstant(), Value: 5.8789254e+10, Uncertainty: 53000},
	{Constant: codata2010.WienWavelengthDisplacementLawConstant(), Value: 0.0028977721, Uncertainty: 2.6e-09},
	{Constant: codata2010.LatticeSpacingOfSilicon220(), Value: 1.920155714e-10, Uncertainty: 3.2e-18},
}
